package interfaces

import (
	"context"
	"extrusao_pcp/internal/domain/entities"
)

// ICapacityExceptionRepository abstracts per-date ceiling overrides.
// GetByData returns a zero-value exception when the date has none.

type ICapacityExceptionRepository interface {
	GetByData(ctx context.Context, data string) (entities.CapacityException, error)
	Put(ctx context.Context, e entities.CapacityException) (entities.CapacityException, error)
}
