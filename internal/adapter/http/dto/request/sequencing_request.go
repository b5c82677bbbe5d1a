package request

import "strings"

// ReorderRequest is the payload for the propose-reorder route. De/Para are
// pointers so that index 0 survives required-field binding.
type ReorderRequest struct {
	Data string `json:"data" binding:"required"`
	De   *int   `json:"de" binding:"required"`
	Para *int   `json:"para" binding:"required"`
}

// ReorderConfirmRequest commits a parked violating proposal. Justificativa is
// free text; the audit record is written even when it comes empty.
type ReorderConfirmRequest struct {
	PropostaID    string `json:"proposta_id" binding:"required"`
	Justificativa string `json:"justificativa"`
}

type ReorderCancelRequest struct {
	PropostaID string `json:"proposta_id" binding:"required"`
}

// OrderEditRequest is the bounded per-OP edit. Absent fields keep their
// current value; an explicit empty ferramenta_codigo clears the assignment.
type OrderEditRequest struct {
	QuantidadeKg     *float64 `json:"quantidade_kg"`
	FerramentaCodigo *string  `json:"ferramenta_codigo"`
}

func (r OrderEditRequest) IsEmpty() bool {
	return r.QuantidadeKg == nil && r.FerramentaCodigo == nil
}

func (r ReorderConfirmRequest) ResolvePropostaID() string {
	return strings.TrimSpace(r.PropostaID)
}

func (r ReorderCancelRequest) ResolvePropostaID() string {
	return strings.TrimSpace(r.PropostaID)
}
