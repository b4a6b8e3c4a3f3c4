package domain

import (
	"errors"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPlaced     Status = "Order Placed"
	StatusProcessing Status = "Processing"
	StatusCancelled  Status = "Cancelled"
	StatusCompleted  Status = "Completed"
)

var (
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrMissingEmail        = errors.New("email is required")
	ErrNoItems             = errors.New("order must contain at least one item")
	ErrItemMissingName     = errors.New("item name is required")
	ErrItemMissingSKU      = errors.New("item sku is required")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
)

// LineItem is a single purchased position. It has no identity of its own and
// is owned exclusively by its Order.
type LineItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order models the uniquely-numbered purchase record.
type Order struct {
	ID             int64
	Number         string
	CustomerName   string
	Email          string
	StreetAddress  string
	City           string
	ZipCode        string
	ShippingMethod string
	PaymentMethod  string
	PaymentDetails map[string]string
	Items          []LineItem
	Subtotal       float64
	Shipping       float64
	Total          float64
	Status         Status
	CreatedAt      time.Time
}

// Validate enforces the invariants the intake pipeline relies on. Totals are
// derived during normalization and are not re-validated here.
func (o *Order) Validate() error {
	if o.CustomerName == "" {
		return ErrMissingCustomerName
	}
	if o.Email == "" {
		return ErrMissingEmail
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for i := range o.Items {
		if o.Items[i].Name == "" {
			return ErrItemMissingName
		}
		if o.Items[i].SKU == "" {
			return ErrItemMissingSKU
		}
	}
	return nil
}

// Transition moves the order to the next lifecycle state:
// Order Placed -> Processing -> {Cancelled | Completed}.
// Cancellation is also allowed straight from Order Placed.
func (o *Order) Transition(next Status) error {
	if !canTransition(o.Status, next) {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

func canTransition(from, to Status) bool {
	switch from {
	case StatusPlaced:
		return to == StatusProcessing || to == StatusCancelled
	case StatusProcessing:
		return to == StatusCancelled || to == StatusCompleted
	default:
		return false
	}
}

// IsKnownStatus reports whether the value is one of the lifecycle states.
// Other strings are tolerated on stored orders; the startup backfill only
// rewrites missing values.
func IsKnownStatus(s Status) bool {
	switch s {
	case StatusPlaced, StatusProcessing, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}
