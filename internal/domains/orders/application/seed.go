package application

import "github.com/qashop/storefront-api/internal/domains/orders/domain"

// sampleOrders returns the deterministic demo ledger inserted on first boot.
func sampleOrders() []*domain.Order {
	return []*domain.Order{
		{
			CustomerName:   "Avery Chen",
			Email:          "avery@example.com",
			StreetAddress:  "123 Market St",
			City:           "San Francisco",
			ZipCode:        "94107",
			ShippingMethod: "Standard (5-7 days) - Free",
			PaymentMethod:  "Credit Card",
			PaymentDetails: map[string]string{"cardEnding": "1111"},
			Items: []domain.LineItem{
				{Name: "Business Laptop", SKU: "BL-01", Price: 899.99, Quantity: 1},
			},
			Subtotal: 899.99,
			Shipping: 0,
			Total:    899.99,
			Status:   domain.StatusPlaced,
		},
		{
			CustomerName:   "Jordan Patel",
			Email:          "jordan@example.com",
			StreetAddress:  "78 Innovation Way",
			City:           "Austin",
			ZipCode:        "73301",
			ShippingMethod: "Express (2-3 days) - $25.00",
			PaymentMethod:  "PayPal (Test Mode)",
			PaymentDetails: map[string]string{"transactionId": "PAY123456"},
			Items: []domain.LineItem{
				{Name: "4K Monitor", SKU: "4K-27", Price: 399.99, Quantity: 1},
			},
			Subtotal: 399.99,
			Shipping: 25,
			Total:    424.99,
			Status:   domain.StatusPlaced,
		},
		{
			CustomerName:   "Morgan Lee",
			Email:          "morgan@example.com",
			StreetAddress:  "56 Testing Ave",
			City:           "Seattle",
			ZipCode:        "98101",
			ShippingMethod: "Standard (5-7 days) - Free",
			PaymentMethod:  "Bank Transfer (Test Mode)",
			PaymentDetails: map[string]string{"reference": "BANK-2025"},
			Items: []domain.LineItem{
				{Name: "Desk Lamp", SKU: "DL-10", Price: 54.99, Quantity: 2},
			},
			Subtotal: 109.98,
			Shipping: 0,
			Total:    109.98,
			Status:   domain.StatusPlaced,
		},
	}
}
