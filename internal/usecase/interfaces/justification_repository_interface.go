package interfaces

import (
	"context"
	"extrusao_pcp/internal/domain/entities"
)

// IJustificationRepository durably stores reorder justification records.

type IJustificationRepository interface {
	Create(ctx context.Context, j entities.ReorderJustification) (entities.ReorderJustification, error)
	ListByData(ctx context.Context, data string) ([]entities.ReorderJustification, error)
}
