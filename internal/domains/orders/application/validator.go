package application

import (
	"fmt"

	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

// ValidateBatch checks every normalized entry and reports all offending
// fields at once. A non-nil result rejects the entire batch.
func ValidateBatch(orders []*domain.Order) *ValidationError {
	fields := map[string]string{}
	if len(orders) == 0 {
		fields["batch"] = "at least one order is required"
	}
	for i, order := range orders {
		validateOrder(i, order, fields)
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func validateOrder(idx int, order *domain.Order, fields map[string]string) {
	if order.CustomerName == "" {
		fields[fmt.Sprintf("%d.customerName", idx)] = "required"
	}
	if order.Email == "" {
		fields[fmt.Sprintf("%d.email", idx)] = "required"
	}
	if len(order.Items) == 0 {
		fields[fmt.Sprintf("%d.items", idx)] = "at least one item is required"
		return
	}
	for j, item := range order.Items {
		if item.Name == "" {
			fields[fmt.Sprintf("%d.items.%d.name", idx, j)] = "required"
		}
		if item.SKU == "" {
			fields[fmt.Sprintf("%d.items.%d.sku", idx, j)] = "required"
		}
	}
}
