package ports

import (
	"context"
	"errors"

	"github.com/qashop/storefront-api/internal/domains/catalog/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Provider supplies the product list. Implementations may be static fixtures
// or a real catalog backend; callers treat the data as read-only.
type Provider interface {
	Products(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
