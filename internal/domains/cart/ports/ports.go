package ports

import (
	"context"

	"github.com/qashop/storefront-api/internal/domains/cart/domain"
)

// SessionStore is the durable client-local state behind the cart: a get/set/
// clear surface over the structured Cart value, independent of the backing
// storage so it can be swapped for a server-side session without touching
// callers.
type SessionStore interface {
	// Load returns the persisted cart, or an empty cart when none exists.
	Load(ctx context.Context) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context) error
}

// Confirmer asks the user to confirm a destructive cart action. Declining
// leaves the cart untouched.
type Confirmer interface {
	ConfirmRemoval(item domain.Item) bool
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(item domain.Item) bool

func (f ConfirmerFunc) ConfirmRemoval(item domain.Item) bool { return f(item) }

// CheckoutSubmission is the order-creation payload built from cart entries.
// Product ids and descriptions are dropped on the way out.
type CheckoutSubmission struct {
	CustomerName   string            `json:"customerName"`
	Email          string            `json:"email"`
	StreetAddress  string            `json:"streetAddress"`
	City           string            `json:"city"`
	ZipCode        string            `json:"zipCode"`
	ShippingMethod string            `json:"shippingMethod"`
	PaymentMethod  string            `json:"paymentMethod"`
	PaymentDetails map[string]string `json:"paymentDetails"`
	Items          []SubmissionItem  `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	Shipping       float64           `json:"shipping"`
	Total          float64           `json:"total"`
}

// SubmissionItem carries only the fields an order line item keeps.
type SubmissionItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Receipt reports a confirmed order creation.
type Receipt struct {
	OrderNumber  string
	OrderNumbers []string
}

// OrderGateway submits a checkout to the order service.
type OrderGateway interface {
	CreateOrder(ctx context.Context, submission CheckoutSubmission) (*Receipt, error)
}
