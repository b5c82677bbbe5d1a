package handlers

import (
	"errors"
	request "extrusao_pcp/internal/adapter/http/dto/request"
	response "extrusao_pcp/internal/adapter/http/dto/response"
	"extrusao_pcp/internal/usecase"
	"extrusao_pcp/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidStagingPayload = pkg.NewDomainErrorSimple("INVALID_PREVIEW_INPUT", "Invalid preview payload", http.StatusBadRequest)
)

// StagingHandler handles HTTP requests for the preview collection: ERP
// imports, staged-item edits and confirmation into the committed schedule.

type StagingHandler struct {
	usecase usecase.IStagingUseCase
}

func NewStagingHandler(uc usecase.IStagingUseCase) *StagingHandler {
	return &StagingHandler{usecase: uc}
}

// Import pulls newly-sourced OPs from the ERP into the date's preview.
func (h *StagingHandler) Import(c *gin.Context) {
	var payload request.PreviewImportRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagingPayload.HTTPStatus, errInvalidStagingPayload.ToHTTPError())
		return
	}
	log.Printf("[staging][handler] import start data=%s", payload.Data)

	items, err := h.usecase.ImportFromERP(c.Request.Context(), payload.Data)
	if err != nil {
		log.Printf("[staging][handler] import failed data=%s err=%v", payload.Data, err)
		appErr := mapStagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[staging][handler] import success data=%s items=%d", payload.Data, len(items))

	c.JSON(http.StatusOK, response.FromPreviewItems(items))
}

// List returns the staged items of a date.
func (h *StagingHandler) List(c *gin.Context) {
	data := c.Query("data")

	items, err := h.usecase.List(c.Request.Context(), data)
	if err != nil {
		appErr := mapStagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPreviewItems(items))
}

// UpdateItem patches one staged item. An item gone from the date answers 204:
// the removal already achieved what the caller wanted.
func (h *StagingHandler) UpdateItem(c *gin.Context) {
	data := c.Param("data")
	itemID := c.Param("id")

	var payload request.PreviewUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagingPayload.HTTPStatus, errInvalidStagingPayload.ToHTTPError())
		return
	}
	log.Printf("[staging][handler] update start data=%s id=%s", data, itemID)

	item, err := h.usecase.UpdateItem(c.Request.Context(), data, itemID, usecase.PreviewPatch{
		FerramentaManual: payload.FerramentaManual,
	})
	if err != nil {
		log.Printf("[staging][handler] update failed data=%s id=%s err=%v", data, itemID, err)
		appErr := mapStagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if item.ID == "" {
		log.Printf("[staging][handler] update skipped missing item data=%s id=%s", data, itemID)
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, response.FromPreviewItem(item))
}

// RemoveItem drops one staged item; removing an absent item is a no-op.
func (h *StagingHandler) RemoveItem(c *gin.Context) {
	data := c.Param("data")
	itemID := c.Param("id")
	log.Printf("[staging][handler] remove data=%s id=%s", data, itemID)

	if err := h.usecase.RemoveItem(c.Request.Context(), data, itemID); err != nil {
		appErr := mapStagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Confirm promotes the listed staged items into the committed schedule.
func (h *StagingHandler) Confirm(c *gin.Context) {
	var payload request.PreviewConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStagingPayload.HTTPStatus, errInvalidStagingPayload.ToHTTPError())
		return
	}
	log.Printf("[staging][handler] confirm start data=%s items=%d", payload.Data, len(payload.ItemIDs))

	criadas, err := h.usecase.Confirm(c.Request.Context(), payload.Data, payload.ItemIDs)
	if err != nil {
		log.Printf("[staging][handler] confirm failed data=%s err=%v", payload.Data, err)
		appErr := mapStagingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[staging][handler] confirm success data=%s criadas=%d", payload.Data, len(criadas))

	c.JSON(http.StatusCreated, response.FromOrders(criadas))
}

func mapStagingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidData), errors.Is(err, usecase.ErrInvalidItemID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrERPGatewayNotConfig):
		return pkg.NewDomainErrorSimple("ERP_GATEWAY_UNAVAILABLE", "ERP gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
