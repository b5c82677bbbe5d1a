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
	errInvalidSequencingPayload = pkg.NewDomainErrorSimple("INVALID_SEQUENCING_INPUT", "Invalid sequencing payload", http.StatusBadRequest)
)

// SequencingHandler handles HTTP requests for the committed day sequence:
// board reads, guarded reorders and bounded per-OP edits.

type SequencingHandler struct {
	usecase usecase.ISequencingUseCase
}

func NewSequencingHandler(uc usecase.ISequencingUseCase) *SequencingHandler {
	return &SequencingHandler{usecase: uc}
}

// GetSchedule returns the date's sequence with derived pipeline stages.
func (h *SequencingHandler) GetSchedule(c *gin.Context) {
	data := c.Query("data")
	log.Printf("[sequencing][handler] get start data=%s", data)

	orders, err := h.usecase.GetSchedule(c.Request.Context(), data)
	if err != nil {
		log.Printf("[sequencing][handler] get failed data=%s err=%v", data, err)
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ProposeReorder applies a clean move directly, or parks a violating one and
// answers with the proposal awaiting justification.
func (h *SequencingHandler) ProposeReorder(c *gin.Context) {
	var payload request.ReorderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSequencingPayload.HTTPStatus, errInvalidSequencingPayload.ToHTTPError())
		return
	}
	log.Printf("[sequencing][handler] reorder start data=%s de=%d para=%d", payload.Data, *payload.De, *payload.Para)

	result, err := h.usecase.ProposeReorder(c.Request.Context(), payload.Data, *payload.De, *payload.Para)
	if err != nil {
		log.Printf("[sequencing][handler] reorder failed data=%s err=%v", payload.Data, err)
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if !result.Aplicado {
		log.Printf("[sequencing][handler] reorder parked data=%s proposta_id=%s", payload.Data, result.PropostaID)
		c.JSON(http.StatusOK, response.ReorderResponse{
			PropostaID: result.PropostaID,
			Violacao:   response.FromViolation(result.Violacao),
		})
		return
	}
	log.Printf("[sequencing][handler] reorder applied data=%s", payload.Data)

	c.JSON(http.StatusOK, response.ReorderResponse{
		Aplicado:  true,
		Sequencia: response.FromOrders(result.Sequencia),
	})
}

// ConfirmReorder commits a parked proposal, recording its justification.
func (h *SequencingHandler) ConfirmReorder(c *gin.Context) {
	var payload request.ReorderConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSequencingPayload.HTTPStatus, errInvalidSequencingPayload.ToHTTPError())
		return
	}
	propostaID := payload.ResolvePropostaID()
	log.Printf("[sequencing][handler] reorder confirm start proposta_id=%s", propostaID)

	seq, err := h.usecase.ConfirmReorder(c.Request.Context(), propostaID, payload.Justificativa)
	if err != nil {
		log.Printf("[sequencing][handler] reorder confirm failed proposta_id=%s err=%v", propostaID, err)
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sequencing][handler] reorder confirm success proposta_id=%s", propostaID)

	c.JSON(http.StatusOK, response.ReorderResponse{
		Aplicado:  true,
		Sequencia: response.FromOrders(seq),
	})
}

// CancelReorder discards a parked proposal, leaving the sequence untouched.
func (h *SequencingHandler) CancelReorder(c *gin.Context) {
	var payload request.ReorderCancelRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSequencingPayload.HTTPStatus, errInvalidSequencingPayload.ToHTTPError())
		return
	}
	propostaID := payload.ResolvePropostaID()
	log.Printf("[sequencing][handler] reorder cancel proposta_id=%s", propostaID)

	if err := h.usecase.CancelReorder(c.Request.Context(), propostaID); err != nil {
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// EditOrder applies a bounded patch (quantity, tool) to one committed OP.
func (h *SequencingHandler) EditOrder(c *gin.Context) {
	id := c.Param("id")

	var payload request.OrderEditRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSequencingPayload.HTTPStatus, errInvalidSequencingPayload.ToHTTPError())
		return
	}
	if payload.IsEmpty() {
		c.JSON(errInvalidSequencingPayload.HTTPStatus, errInvalidSequencingPayload.ToHTTPError())
		return
	}
	log.Printf("[sequencing][handler] edit start id=%s", id)

	updated, err := h.usecase.EditOrder(c.Request.Context(), id, usecase.OrderPatch{
		QuantidadeKg:     payload.QuantidadeKg,
		FerramentaCodigo: payload.FerramentaCodigo,
	})
	if err != nil {
		log.Printf("[sequencing][handler] edit failed id=%s err=%v", id, err)
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sequencing][handler] edit success id=%s", id)

	c.JSON(http.StatusOK, response.FromOrder(updated))
}

// ListJustifications returns the reorder audit trail of a date.
func (h *SequencingHandler) ListJustifications(c *gin.Context) {
	data := c.Query("data")

	records, err := h.usecase.ListJustifications(c.Request.Context(), data)
	if err != nil {
		appErr := mapSequencingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJustifications(records))
}

func mapSequencingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidData), errors.Is(err, usecase.ErrInvalidIndices),
		errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidQuantidade):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReorderPendente):
		return pkg.NewDomainErrorSimple("REORDER_PENDING", "A reorder is pending confirmation for this date", http.StatusConflict)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Reorder proposal not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
