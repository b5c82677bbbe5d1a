package entities

import "time"

// ReorderViolation flags a manual reorder that deprioritized an OP with a
// nearer delivery date. It is a control-flow branch, not an error: the move
// only commits after the operator confirms it with a justification record.
type ReorderViolation struct {
	OrdemID    string `json:"ordem_id"`
	DeIndice   int    `json:"de_indice"`
	ParaIndice int    `json:"para_indice"`
}

// ReorderJustification is the mandatory audit record for a confirmed
// violating reorder. Justificativa may be empty; the record itself may not.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (data-index): data
type ReorderJustification struct {
	ID            string    `json:"id"`
	Data          string    `json:"data"`
	OrdemID       string    `json:"ordem_id"`
	DeIndice      int       `json:"de_indice"`
	ParaIndice    int       `json:"para_indice"`
	Justificativa string    `json:"justificativa,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MoveOrder returns a copy of seq with the element at de moved to para,
// shifting the elements in between (list-move, not swap). Positions are
// rewritten to match the new ordering.
func MoveOrder(seq []Order, de, para int) []Order {
	out := make([]Order, 0, len(seq))
	out = append(out, seq...)
	if de == para || de < 0 || para < 0 || de >= len(out) || para >= len(out) {
		return out
	}
	moved := out[de]
	out = append(out[:de], out[de+1:]...)
	out = append(out[:para], append([]Order{moved}, out[para:]...)...)
	for i := range out {
		out[i].Posicao = i
	}
	return out
}

// DetectUrgencyViolation checks a proposed move against the pre-move
// sequence. Only a downward move can violate: the moved OP must have a
// delivery date strictly earlier than some OP it crossed. Equal dates never
// violate, and the scan is scoped to the crossed range, not the whole list.
func DetectUrgencyViolation(seq []Order, de, para int) *ReorderViolation {
	if para <= de || de < 0 || para >= len(seq) {
		return nil
	}
	moved := seq[de]
	violated := false
	for i := de + 1; i <= para; i++ {
		if moved.DataEntrega.Before(seq[i].DataEntrega) {
			violated = true
			break
		}
	}
	if !violated {
		return nil
	}
	return &ReorderViolation{OrdemID: moved.ID, DeIndice: de, ParaIndice: para}
}
