package interfaces

import (
	"context"
	"extrusao_pcp/internal/domain/entities"
)

// IPreviewRepository abstracts DynamoDB persistence for staged preview items.
//
// Delete must be idempotent: staged data shifts under concurrent use and a
// missing id is a normal race, never an error.

type IPreviewRepository interface {
	ListByData(ctx context.Context, data string) ([]entities.PreviewItem, error)
	GetByID(ctx context.Context, id string) (entities.PreviewItem, error)
	Put(ctx context.Context, item entities.PreviewItem) (entities.PreviewItem, error)
	Delete(ctx context.Context, id string) error
}
