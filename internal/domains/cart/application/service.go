package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/qashop/storefront-api/internal/domains/cart/domain"
	"github.com/qashop/storefront-api/internal/domains/cart/ports"
)

var ErrEmptyCart = errors.New("cart is empty")

// Service is the cart state machine. Every mutation persists the cart back to
// the session store so the badge and contents survive a reload; a declined
// removal confirmation leaves the stored state exactly as it was.
type Service struct {
	store   ports.SessionStore
	confirm ports.Confirmer
	gateway ports.OrderGateway
}

func NewService(store ports.SessionStore, confirm ports.Confirmer, gateway ports.OrderGateway) *Service {
	return &Service{store: store, confirm: confirm, gateway: gateway}
}

// AddProduct puts the item in the cart, deduplicating by product id.
func (s *Service) AddProduct(ctx context.Context, item domain.Item) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	cart.Add(item)
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Increment raises an entry's quantity by one.
func (s *Service) Increment(ctx context.Context, productID string) (*domain.Cart, error) {
	return s.adjust(ctx, productID, 1)
}

// Decrement lowers an entry's quantity by one. Dropping below one asks for
// removal confirmation; declining keeps the entry at quantity one.
func (s *Service) Decrement(ctx context.Context, productID string) (*domain.Cart, error) {
	return s.adjust(ctx, productID, -1)
}

func (s *Service) adjust(ctx context.Context, productID string, delta int) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry := cart.Find(productID)
	if entry == nil {
		return nil, domain.ErrItemNotInCart
	}
	if entry.Quantity+delta < 1 {
		if !s.confirm.ConfirmRemoval(*entry) {
			return cart, nil
		}
		if err := cart.Remove(productID); err != nil {
			return nil, err
		}
	} else {
		if _, err := cart.Adjust(productID, delta); err != nil {
			return nil, err
		}
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Remove deletes the entry after confirmation; declining is a no-op.
func (s *Service) Remove(ctx context.Context, productID string) (*domain.Cart, error) {
	cart, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	entry := cart.Find(productID)
	if entry == nil {
		return nil, domain.ErrItemNotInCart
	}
	if !s.confirm.ConfirmRemoval(*entry) {
		return cart, nil
	}
	if err := cart.Remove(productID); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Quantity returns the badge count from the persisted cart.
func (s *Service) Quantity(ctx context.Context) (int, error) {
	cart, err := s.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return cart.TotalQuantity(), nil
}

// Cart returns the persisted cart contents.
func (s *Service) Cart(ctx context.Context) (*domain.Cart, error) {
	return s.store.Load(ctx)
}

// CheckoutDetails carries the shopper-entered form fields.
type CheckoutDetails struct {
	CustomerName   string
	Email          string
	StreetAddress  string
	City           string
	ZipCode        string
	ShippingMethod string
	Shipping       float64
	PaymentMethod  string
	PaymentDetails map[string]string
}

// Checkout builds the order submission from the current entries (keeping
// name, sku, price, and quantity only), sends it through the gateway, and
// clears the cart once the server confirms. On failure the cart stays
// untouched so a retry is safe.
func (s *Service) Checkout(ctx context.Context, details CheckoutDetails) (*ports.Receipt, error) {
	cart, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := make([]ports.SubmissionItem, 0, len(cart.Items))
	for _, entry := range cart.Items {
		items = append(items, ports.SubmissionItem{
			Name:     entry.Name,
			SKU:      entry.SKU,
			Price:    entry.Price,
			Quantity: entry.Quantity,
		})
	}
	subtotal := cart.Subtotal()
	total, _ := decimal.NewFromFloat(subtotal).Add(decimal.NewFromFloat(details.Shipping)).Float64()

	receipt, err := s.gateway.CreateOrder(ctx, ports.CheckoutSubmission{
		CustomerName:   details.CustomerName,
		Email:          details.Email,
		StreetAddress:  details.StreetAddress,
		City:           details.City,
		ZipCode:        details.ZipCode,
		ShippingMethod: details.ShippingMethod,
		PaymentMethod:  details.PaymentMethod,
		PaymentDetails: details.PaymentDetails,
		Items:          items,
		Subtotal:       subtotal,
		Shipping:       details.Shipping,
		Total:          total,
	})
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}

	if err := s.store.Clear(ctx); err != nil {
		// The order exists server-side; a stale local cart is the lesser harm.
		return receipt, fmt.Errorf("clear cart after checkout: %w", err)
	}
	return receipt, nil
}
