package ports

import (
	"context"

	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

// Service exposes the order intake and read use cases to adapters.
type Service interface {
	// CreateOrders normalizes, validates, and persists a batch. Validation is
	// all-or-nothing; persistence is transactional. An optional idempotency
	// key makes retries of the same submission safe.
	CreateOrders(ctx context.Context, idempotencyKey string, raws []types.RawOrder) (*types.CreateResult, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	CancelOrder(ctx context.Context, number string) (*domain.Order, error)
}
