package interfaces

import (
	"context"
	"extrusao_pcp/internal/domain/entities"
)

// IERPGateway abstracts the external ERP (TOTVS) that sources candidate OPs
// for staging.

type IERPGateway interface {
	FetchNewOrders(ctx context.Context, data string) ([]entities.ERPOrder, error)
}
