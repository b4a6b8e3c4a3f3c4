package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

func TestValidateBatch_EmptyBatch(t *testing.T) {
	verr := ValidateBatch(nil)
	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "batch")
	require.ErrorIs(t, verr, ErrValidation)
}

func TestValidateBatch_ReportsEveryOffendingField(t *testing.T) {
	verr := ValidateBatch([]*domain.Order{
		{
			Email: "a@example.com",
			Items: []domain.LineItem{{Name: "Mouse"}},
		},
		{
			CustomerName: "Morgan Lee",
		},
	})

	require.NotNil(t, verr)
	require.Contains(t, verr.Fields, "0.customerName")
	require.Contains(t, verr.Fields, "0.items.0.sku")
	require.Contains(t, verr.Fields, "1.email")
	require.Contains(t, verr.Fields, "1.items")
	require.NotContains(t, verr.Fields, "0.email")
}

func TestValidateBatch_Valid(t *testing.T) {
	verr := ValidateBatch([]*domain.Order{
		{
			CustomerName: "Morgan Lee",
			Email:        "morgan@example.com",
			Items:        []domain.LineItem{{Name: "Mouse", SKU: "DL-10"}},
		},
	})
	require.Nil(t, verr)
}
