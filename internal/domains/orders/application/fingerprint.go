package application

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

type fingerprintItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type fingerprintOrder struct {
	CustomerName   string            `json:"customerName"`
	Email          string            `json:"email"`
	StreetAddress  string            `json:"streetAddress"`
	City           string            `json:"city"`
	ZipCode        string            `json:"zipCode"`
	ShippingMethod string            `json:"shippingMethod"`
	PaymentMethod  string            `json:"paymentMethod"`
	PaymentDetails map[string]string `json:"paymentDetails"`
	Items          []fingerprintItem `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	Shipping       float64           `json:"shipping"`
	Total          float64           `json:"total"`
	Status         string            `json:"status"`
}

// FingerprintBatch hashes the normalized batch so the same submission always
// maps to the same idempotency request hash regardless of raw JSON formatting.
// Map keys serialize sorted, which keeps the digest deterministic.
func FingerprintBatch(orders []*domain.Order) (string, error) {
	normalized := make([]fingerprintOrder, 0, len(orders))
	for _, order := range orders {
		items := make([]fingerprintItem, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, fingerprintItem(item))
		}
		normalized = append(normalized, fingerprintOrder{
			CustomerName:   order.CustomerName,
			Email:          order.Email,
			StreetAddress:  order.StreetAddress,
			City:           order.City,
			ZipCode:        order.ZipCode,
			ShippingMethod: order.ShippingMethod,
			PaymentMethod:  order.PaymentMethod,
			PaymentDetails: order.PaymentDetails,
			Items:          items,
			Subtotal:       order.Subtotal,
			Shipping:       order.Shipping,
			Total:          order.Total,
			Status:         string(order.Status),
		})
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}
