package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	cartmemory "github.com/qashop/storefront-api/internal/domains/cart/adapters/memory"
	"github.com/qashop/storefront-api/internal/domains/cart/domain"
	"github.com/qashop/storefront-api/internal/domains/cart/ports"
)

// recordingGateway captures the submission and replays a scripted result.
type recordingGateway struct {
	submission *ports.CheckoutSubmission
	receipt    *ports.Receipt
	err        error
}

func (g *recordingGateway) CreateOrder(_ context.Context, submission ports.CheckoutSubmission) (*ports.Receipt, error) {
	g.submission = &submission
	if g.err != nil {
		return nil, g.err
	}
	return g.receipt, nil
}

func accept() ports.Confirmer {
	return ports.ConfirmerFunc(func(domain.Item) bool { return true })
}

func decline() ports.Confirmer {
	return ports.ConfirmerFunc(func(domain.Item) bool { return false })
}

func mouse() domain.Item {
	return domain.Item{ProductID: "prod-4", Name: "Nimbus Mouse", SKU: "DL-10", Price: 54.99, Quantity: 1}
}

func TestAddProduct_PersistsAndDeduplicates(t *testing.T) {
	store := cartmemory.NewSessionStore()
	svc := NewService(store, accept(), &recordingGateway{})

	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)
	cart, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	require.Equal(t, 2, cart.Items[0].Quantity)

	qty, err := svc.Quantity(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, qty)
}

func TestDecrement_BelowOneAsksAndRemoves(t *testing.T) {
	store := cartmemory.NewSessionStore()
	svc := NewService(store, accept(), &recordingGateway{})
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)

	cart, err := svc.Decrement(context.Background(), "prod-4")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, stored.IsEmpty())
}

func TestDecrement_DeclinedKeepsEntry(t *testing.T) {
	store := cartmemory.NewSessionStore()
	svc := NewService(store, decline(), &recordingGateway{})
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)

	cart, err := svc.Decrement(context.Background(), "prod-4")
	require.NoError(t, err)
	require.Equal(t, 1, cart.Items[0].Quantity)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stored.Items[0].Quantity)
}

func TestDecrement_AboveOneNeedsNoConfirmation(t *testing.T) {
	store := cartmemory.NewSessionStore()
	svc := NewService(store, decline(), &recordingGateway{})
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)
	_, err = svc.Increment(context.Background(), "prod-4")
	require.NoError(t, err)

	cart, err := svc.Decrement(context.Background(), "prod-4")
	require.NoError(t, err)
	require.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRemove_DeclinedIsNoOp(t *testing.T) {
	store := cartmemory.NewSessionStore()
	svc := NewService(store, decline(), &recordingGateway{})
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)

	cart, err := svc.Remove(context.Background(), "prod-4")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
}

func TestAdjust_UnknownProduct(t *testing.T) {
	svc := NewService(cartmemory.NewSessionStore(), accept(), &recordingGateway{})

	_, err := svc.Increment(context.Background(), "prod-unknown")
	require.ErrorIs(t, err, domain.ErrItemNotInCart)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc := NewService(cartmemory.NewSessionStore(), accept(), &recordingGateway{})

	_, err := svc.Checkout(context.Background(), CheckoutDetails{CustomerName: "Avery Chen"})
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_SubmitsAndClears(t *testing.T) {
	store := cartmemory.NewSessionStore()
	gateway := &recordingGateway{receipt: &ports.Receipt{OrderNumber: "ORD-1", OrderNumbers: []string{"ORD-1"}}}
	svc := NewService(store, accept(), gateway)
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)
	_, err = svc.Increment(context.Background(), "prod-4")
	require.NoError(t, err)

	receipt, err := svc.Checkout(context.Background(), CheckoutDetails{
		CustomerName:   "Avery Chen",
		Email:          "avery@example.com",
		ShippingMethod: "Express (2-3 days) - $25.00",
		Shipping:       25,
		PaymentMethod:  "Credit Card",
	})
	require.NoError(t, err)
	require.Equal(t, "ORD-1", receipt.OrderNumber)

	// submission keeps name/sku/price/quantity only and derives totals
	require.NotNil(t, gateway.submission)
	require.Len(t, gateway.submission.Items, 1)
	require.Equal(t, ports.SubmissionItem{Name: "Nimbus Mouse", SKU: "DL-10", Price: 54.99, Quantity: 2}, gateway.submission.Items[0])
	require.InDelta(t, 109.98, gateway.submission.Subtotal, 1e-9)
	require.InDelta(t, 134.98, gateway.submission.Total, 1e-9)

	stored, err := store.Load(context.Background())
	require.NoError(t, err)
	require.True(t, stored.IsEmpty())
}

func TestCheckout_FailureKeepsCart(t *testing.T) {
	store := cartmemory.NewSessionStore()
	gateway := &recordingGateway{err: errors.New("order API error: boom")}
	svc := NewService(store, accept(), gateway)
	_, err := svc.AddProduct(context.Background(), mouse())
	require.NoError(t, err)

	_, err = svc.Checkout(context.Background(), CheckoutDetails{CustomerName: "Avery Chen"})
	require.Error(t, err)

	stored, loadErr := store.Load(context.Background())
	require.NoError(t, loadErr)
	require.Len(t, stored.Items, 1)
}
