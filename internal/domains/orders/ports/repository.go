package ports

import (
	"context"
	"errors"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

var (
	ErrNotFound        = errors.New("order not found")
	ErrDuplicateNumber = errors.New("order number already exists")
)

// Repository persists the order ledger. CreateBatch commits all orders inside
// a single transaction: either every order in the batch is durable or none is.
type Repository interface {
	CreateBatch(ctx context.Context, orders []*domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
	FindByNumber(ctx context.Context, number string) (*domain.Order, error)
	// FindByEmail matches the stored email case-insensitively, newest first.
	FindByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, number string, status domain.Status) error
	// BackfillStatuses assigns def to orders whose status is NULL or empty.
	// Explicit statuses are never overwritten.
	BackfillStatuses(ctx context.Context, def domain.Status) (int64, error)
	Count(ctx context.Context) (int64, error)
}
