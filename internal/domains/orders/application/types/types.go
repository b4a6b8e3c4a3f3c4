// Package types carries the transport-agnostic input and output shapes of the
// order intake pipeline.
package types

import "encoding/json"

// RawOrder is one client-submitted order before normalization. The loosely
// typed fields keep whatever JSON the client sent: items and paymentDetails
// may arrive as structured values or as JSON-encoded strings, and the numeric
// fields may be numbers or numeric strings.
type RawOrder struct {
	CustomerName   string          `json:"customerName"`
	Email          string          `json:"email"`
	StreetAddress  string          `json:"streetAddress"`
	City           string          `json:"city"`
	ZipCode        string          `json:"zipCode"`
	ShippingMethod string          `json:"shippingMethod"`
	PaymentMethod  string          `json:"paymentMethod"`
	PaymentDetails json.RawMessage `json:"paymentDetails,omitempty"`
	Items          json.RawMessage `json:"items,omitempty"`
	Subtotal       json.RawMessage `json:"subtotal,omitempty"`
	Shipping       json.RawMessage `json:"shipping,omitempty"`
	Total          json.RawMessage `json:"total,omitempty"`
	Status         string          `json:"status"`
}

// CreateResult reports a committed batch: every generated number plus the
// first one for convenience.
type CreateResult struct {
	OrderNumbers []string
	// Replayed is set when an idempotency key matched a previous submission
	// and no new orders were inserted.
	Replayed bool
}

// First returns the first generated order number, or "" for an empty result.
func (r *CreateResult) First() string {
	if r == nil || len(r.OrderNumbers) == 0 {
		return ""
	}
	return r.OrderNumbers[0]
}
