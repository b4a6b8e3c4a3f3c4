package static

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/catalog/ports"
)

func TestProducts_FullCatalog(t *testing.T) {
	provider := NewProvider()

	products, err := provider.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 15)
	require.Equal(t, "prod-1", products[0].ID)
	require.Equal(t, "4K Monitor", products[0].Name)
}

func TestProducts_ReturnsCopy(t *testing.T) {
	provider := NewProvider()

	first, err := provider.Products(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := provider.Products(context.Background())
	require.NoError(t, err)
	require.Equal(t, "4K Monitor", second[0].Name)
}

func TestFindByID(t *testing.T) {
	provider := NewProvider()

	product, err := provider.FindByID(context.Background(), "prod-4")
	require.NoError(t, err)
	require.Equal(t, "Desk Lamp", product.Name)
	require.Equal(t, "DL-10", product.SKU)

	_, err = provider.FindByID(context.Background(), "prod-999")
	require.ErrorIs(t, err, ports.ErrProductNotFound)
}
