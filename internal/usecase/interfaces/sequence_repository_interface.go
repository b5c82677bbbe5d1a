package interfaces

import (
	"context"
	"extrusao_pcp/internal/domain/entities"
)

// ISequenceRepository abstracts DynamoDB persistence for the committed
// day sequences.
//
// The sequencing board must be able to:
//   - load a date's sequence ordered by posicao
//   - append a confirmed OP at the end of a date's sequence
//   - rewrite a whole date's ordering after a reorder
//   - patch a single OP (quantity/tool edits)

type ISequenceRepository interface {
	ListByData(ctx context.Context, data string) ([]entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	Append(ctx context.Context, o entities.Order) (entities.Order, error)
	ReplaceSequence(ctx context.Context, data string, orders []entities.Order) error
	UpdateEdit(ctx context.Context, id string, quantidadeKg float64, ferramentaCodigo string) (entities.Order, error)
}
