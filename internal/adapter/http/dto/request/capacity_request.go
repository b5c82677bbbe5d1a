package request

// CapacityExceptionRequest upserts the ceiling override of one date. Caps are
// pointers so that an explicit zero (stopped press) binds as present.
type CapacityExceptionRequest struct {
	Data       string   `json:"data" binding:"required"`
	CasaCap    *float64 `json:"casa_cap" binding:"required"`
	ClienteCap *float64 `json:"cliente_cap" binding:"required"`
	Motivo     string   `json:"motivo"`
}
