package application

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
)

func TestFingerprintBatch_Deterministic(t *testing.T) {
	raws := []types.RawOrder{{
		CustomerName:   "Avery Chen",
		Email:          "avery@example.com",
		Items:          []byte(`[{"name":"Laptop","sku":"BL-01","price":899.99}]`),
		PaymentDetails: []byte(`{"cardName":"Avery Chen","last4":"4242"}`),
	}}

	first, err := FingerprintBatch(NormalizeBatch(raws))
	require.NoError(t, err)
	second, err := FingerprintBatch(NormalizeBatch(raws))
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 64)
}

func TestFingerprintBatch_SensitiveToContent(t *testing.T) {
	base := types.RawOrder{
		CustomerName: "Avery Chen",
		Email:        "avery@example.com",
		Items:        []byte(`[{"name":"Laptop","sku":"BL-01","price":899.99}]`),
	}
	changed := base
	changed.Email = "someone-else@example.com"

	first, err := FingerprintBatch(NormalizeBatch([]types.RawOrder{base}))
	require.NoError(t, err)
	second, err := FingerprintBatch(NormalizeBatch([]types.RawOrder{changed}))
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestFingerprintBatch_IgnoresRawFormatting(t *testing.T) {
	compact := types.RawOrder{
		CustomerName: "Avery Chen",
		Email:        "avery@example.com",
		Items:        []byte(`[{"name":"Laptop","sku":"BL-01","price":899.99,"quantity":1}]`),
	}
	spaced := compact
	spaced.CustomerName = "  Avery Chen "
	spaced.Items = []byte(`[ {"quantity": 1, "price": 899.99, "sku": "BL-01", "name": "Laptop"} ]`)

	first, err := FingerprintBatch(NormalizeBatch([]types.RawOrder{compact}))
	require.NoError(t, err)
	second, err := FingerprintBatch(NormalizeBatch([]types.RawOrder{spaced}))
	require.NoError(t, err)
	require.Equal(t, first, second)
}
