package application

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

func TestNormalize_Defaults(t *testing.T) {
	order := Normalize(types.RawOrder{
		CustomerName: "  Jordan Patel  ",
		Email:        "jordan@example.com",
	})

	require.Equal(t, "Jordan Patel", order.CustomerName)
	require.Equal(t, domain.StatusProcessing, order.Status)
	require.Equal(t, "Standard", order.ShippingMethod)
	require.Equal(t, "Credit Card", order.PaymentMethod)
	require.NotNil(t, order.PaymentDetails)
	require.Empty(t, order.PaymentDetails)
}

func TestNormalize_KeepsExplicitStatus(t *testing.T) {
	order := Normalize(types.RawOrder{Status: "Order Placed"})
	require.Equal(t, domain.StatusPlaced, order.Status)
}

func TestNormalize_ItemsAsArray(t *testing.T) {
	order := Normalize(types.RawOrder{
		Items: json.RawMessage(`[{"name":"Nimbus Mouse","sku":"DL-10","price":54.99,"quantity":2}]`),
	})

	require.Len(t, order.Items, 1)
	require.Equal(t, domain.LineItem{Name: "Nimbus Mouse", SKU: "DL-10", Price: 54.99, Quantity: 2}, order.Items[0])
	require.InDelta(t, 109.98, order.Subtotal, 1e-9)
	require.InDelta(t, 109.98, order.Total, 1e-9)
}

func TestNormalize_ItemsAsJSONEncodedString(t *testing.T) {
	encoded, err := json.Marshal(`[{"name":"Nimbus Mouse","sku":"DL-10","price":"54.99","quantity":"2"}]`)
	require.NoError(t, err)

	order := Normalize(types.RawOrder{Items: encoded})

	require.Len(t, order.Items, 1)
	require.Equal(t, 54.99, order.Items[0].Price)
	require.Equal(t, 2, order.Items[0].Quantity)
}

func TestNormalize_SingleItemObjectIsWrapped(t *testing.T) {
	order := Normalize(types.RawOrder{
		Items: json.RawMessage(`{"name":"Nimbus Mouse","sku":"DL-10","price":54.99}`),
	})

	require.Len(t, order.Items, 1)
	require.Equal(t, 1, order.Items[0].Quantity)
}

func TestNormalize_UnparsableItemsYieldEmpty(t *testing.T) {
	order := Normalize(types.RawOrder{Items: json.RawMessage(`"not json at all"`)})
	require.Empty(t, order.Items)

	order = Normalize(types.RawOrder{Items: json.RawMessage(`42`)})
	require.Empty(t, order.Items)
}

func TestNormalize_QuantityFloorsAtOne(t *testing.T) {
	order := Normalize(types.RawOrder{
		Items: json.RawMessage(`[{"name":"a","sku":"s","price":1,"quantity":0},{"name":"b","sku":"s2","price":1,"quantity":-3}]`),
	})

	require.Equal(t, 1, order.Items[0].Quantity)
	require.Equal(t, 1, order.Items[1].Quantity)
}

func TestNormalize_NumericStringTotals(t *testing.T) {
	order := Normalize(types.RawOrder{
		Subtotal: json.RawMessage(`"399.99"`),
		Shipping: json.RawMessage(`"25"`),
		Total:    json.RawMessage(`"424.99"`),
	})

	require.Equal(t, 399.99, order.Subtotal)
	require.Equal(t, 25.0, order.Shipping)
	require.Equal(t, 424.99, order.Total)
}

func TestNormalize_TotalDerivedFromSubtotalAndShipping(t *testing.T) {
	order := Normalize(types.RawOrder{
		Subtotal: json.RawMessage(`0.1`),
		Shipping: json.RawMessage(`0.2`),
	})

	// decimal arithmetic keeps the derived total exact
	require.Equal(t, 0.3, order.Total)
}

func TestNormalize_GarbageNumberCoercesToZero(t *testing.T) {
	order := Normalize(types.RawOrder{Shipping: json.RawMessage(`"free"`)})
	require.Equal(t, 0.0, order.Shipping)
}

func TestNormalize_PaymentDetailsTolerance(t *testing.T) {
	object := Normalize(types.RawOrder{
		PaymentDetails: json.RawMessage(`{"cardName":"Jordan Patel","last4":4242,"cvv":null}`),
	})
	require.Equal(t, "Jordan Patel", object.PaymentDetails["cardName"])
	require.Equal(t, "4242", object.PaymentDetails["last4"])
	require.NotContains(t, object.PaymentDetails, "cvv")

	encoded, err := json.Marshal(`{"cardName":"Jordan Patel"}`)
	require.NoError(t, err)
	fromString := Normalize(types.RawOrder{PaymentDetails: encoded})
	require.Equal(t, "Jordan Patel", fromString.PaymentDetails["cardName"])
}

func TestNormalizeBatch_PreservesOrderAndIndependence(t *testing.T) {
	orders := NormalizeBatch([]types.RawOrder{
		{CustomerName: "First"},
		{CustomerName: "Second", Status: "Order Placed"},
	})

	require.Len(t, orders, 2)
	require.Equal(t, "First", orders[0].CustomerName)
	require.Equal(t, domain.StatusProcessing, orders[0].Status)
	require.Equal(t, domain.StatusPlaced, orders[1].Status)
}
