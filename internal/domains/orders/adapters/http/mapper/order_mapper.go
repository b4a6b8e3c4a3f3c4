package mapper

import (
	"time"

	ordersdomain "github.com/qashop/storefront-api/internal/domains/orders/domain"
)

// Order is the transport-layer shape of a ledger entry.
type Order struct {
	ID             int64             `json:"id"`
	OrderNumber    string            `json:"orderNumber"`
	CustomerName   string            `json:"customerName"`
	Email          string            `json:"email"`
	StreetAddress  string            `json:"streetAddress"`
	City           string            `json:"city"`
	ZipCode        string            `json:"zipCode"`
	ShippingMethod string            `json:"shippingMethod"`
	PaymentMethod  string            `json:"paymentMethod"`
	PaymentDetails map[string]string `json:"paymentDetails"`
	Items          []LineItem        `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	Shipping       float64           `json:"shipping"`
	Total          float64           `json:"total"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"createdAt"`
}

// LineItem mirrors the stored item shape on the wire.
type LineItem struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem(item))
	}
	details := order.PaymentDetails
	if details == nil {
		details = map[string]string{}
	}
	return Order{
		ID:             order.ID,
		OrderNumber:    order.Number,
		CustomerName:   order.CustomerName,
		Email:          order.Email,
		StreetAddress:  order.StreetAddress,
		City:           order.City,
		ZipCode:        order.ZipCode,
		ShippingMethod: order.ShippingMethod,
		PaymentMethod:  order.PaymentMethod,
		PaymentDetails: details,
		Items:          items,
		Subtotal:       order.Subtotal,
		Shipping:       order.Shipping,
		Total:          order.Total,
		Status:         string(order.Status),
		CreatedAt:      order.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainOrders converts a ledger slice, preserving order.
func FromDomainOrders(orders []*ordersdomain.Order) []Order {
	list := make([]Order, 0, len(orders))
	for _, order := range orders {
		list = append(list, FromDomainOrder(order))
	}
	return list
}
