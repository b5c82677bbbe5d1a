package handlers

import (
	"errors"
	request "extrusao_pcp/internal/adapter/http/dto/request"
	response "extrusao_pcp/internal/adapter/http/dto/response"
	"extrusao_pcp/internal/domain/entities"
	"extrusao_pcp/internal/usecase"
	"extrusao_pcp/pkg"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCapacityPayload = pkg.NewDomainErrorSimple("INVALID_CAPACITY_INPUT", "Invalid capacity payload", http.StatusBadRequest)
)

// CapacityHandler handles HTTP requests for advisory capacity utilization
// and per-date ceiling exceptions.

type CapacityHandler struct {
	usecase usecase.ICapacityUseCase
}

func NewCapacityHandler(uc usecase.ICapacityUseCase) *CapacityHandler {
	return &CapacityHandler{usecase: uc}
}

// GetUtilization returns the casa/cliente/total panel for a date, in day or
// week mode.
func (h *CapacityHandler) GetUtilization(c *gin.Context) {
	data := c.Query("data")
	modo := c.Query("modo")

	panel, err := h.usecase.GetUtilization(c.Request.Context(), data, modo)
	if err != nil {
		log.Printf("[capacity][handler] utilization failed data=%s modo=%s err=%v", data, modo, err)
		appErr := mapCapacityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCapacityPanel(panel))
}

// UpsertException sets the ceiling override for one date.
func (h *CapacityHandler) UpsertException(c *gin.Context) {
	var payload request.CapacityExceptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCapacityPayload.HTTPStatus, errInvalidCapacityPayload.ToHTTPError())
		return
	}
	log.Printf("[capacity][handler] exception upsert data=%s", payload.Data)

	exc, err := h.usecase.UpsertException(c.Request.Context(), entities.CapacityException{
		Data:       payload.Data,
		CasaCap:    *payload.CasaCap,
		ClienteCap: *payload.ClienteCap,
		Motivo:     payload.Motivo,
	})
	if err != nil {
		log.Printf("[capacity][handler] exception upsert failed data=%s err=%v", payload.Data, err)
		appErr := mapCapacityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCapacityException(exc))
}

// GetException returns the ceiling override of a date, if any.
func (h *CapacityHandler) GetException(c *gin.Context) {
	data := c.Query("data")

	exc, err := h.usecase.GetException(c.Request.Context(), data)
	if err != nil {
		appErr := mapCapacityError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCapacityException(exc))
}

func mapCapacityError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidData), errors.Is(err, usecase.ErrInvalidModo), errors.Is(err, usecase.ErrInvalidCapacidade):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExceptionNotFound):
		return pkg.NewDomainErrorSimple("EXCEPTION_NOT_FOUND", "Capacity exception not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
