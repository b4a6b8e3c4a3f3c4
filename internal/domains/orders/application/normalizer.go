package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
	"github.com/qashop/storefront-api/internal/domains/orders/domain"
)

// Fallbacks applied when a submission omits the field.
const (
	DefaultStatus         = domain.StatusProcessing
	DefaultShippingMethod = "Standard"
	DefaultPaymentMethod  = "Credit Card"
)

// Normalize coerces one loosely-typed submission into an Order-shaped record.
// Every coercion degrades to a safe default, so normalization never fails;
// the order is not yet numbered or timestamped.
func Normalize(raw types.RawOrder) *domain.Order {
	items := normalizeItems(raw.Items)

	subtotal, present := coerceNumber(raw.Subtotal)
	if !present {
		subtotal = itemsSubtotal(items)
	}
	shipping, _ := coerceNumber(raw.Shipping)
	total, present := coerceNumber(raw.Total)
	if !present {
		total = sum(subtotal, shipping)
	}

	order := &domain.Order{
		CustomerName:   strings.TrimSpace(raw.CustomerName),
		Email:          strings.TrimSpace(raw.Email),
		StreetAddress:  strings.TrimSpace(raw.StreetAddress),
		City:           strings.TrimSpace(raw.City),
		ZipCode:        strings.TrimSpace(raw.ZipCode),
		ShippingMethod: strings.TrimSpace(raw.ShippingMethod),
		PaymentMethod:  strings.TrimSpace(raw.PaymentMethod),
		PaymentDetails: normalizePaymentDetails(raw.PaymentDetails),
		Items:          items,
		Subtotal:       subtotal,
		Shipping:       shipping,
		Total:          total,
		Status:         domain.Status(strings.TrimSpace(raw.Status)),
	}
	if order.Status == "" {
		order.Status = DefaultStatus
	}
	if order.ShippingMethod == "" {
		order.ShippingMethod = DefaultShippingMethod
	}
	if order.PaymentMethod == "" {
		order.PaymentMethod = DefaultPaymentMethod
	}
	return order
}

// NormalizeBatch applies Normalize to each raw entry, keeping order.
func NormalizeBatch(raws []types.RawOrder) []*domain.Order {
	orders := make([]*domain.Order, 0, len(raws))
	for _, raw := range raws {
		orders = append(orders, Normalize(raw))
	}
	return orders
}

type rawLineItem struct {
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Price    json.RawMessage `json:"price"`
	Quantity json.RawMessage `json:"quantity"`
}

// normalizeItems accepts a sequence, a single object, or a JSON-encoded string
// of either. A string that fails to parse yields an empty slice.
func normalizeItems(raw json.RawMessage) []domain.LineItem {
	entries := rawSequence(raw)
	items := make([]domain.LineItem, 0, len(entries))
	for _, entry := range entries {
		var ri rawLineItem
		if err := json.Unmarshal(entry, &ri); err != nil {
			continue
		}
		price, _ := coerceNumber(ri.Price)
		quantity, present := coerceNumber(ri.Quantity)
		if !present {
			quantity = 1
		}
		qty := int(quantity)
		if qty < 1 {
			qty = 1
		}
		items = append(items, domain.LineItem{
			Name:     strings.TrimSpace(ri.Name),
			SKU:      strings.TrimSpace(ri.SKU),
			Price:    price,
			Quantity: qty,
		})
	}
	return items
}

func rawSequence(raw json.RawMessage) []json.RawMessage {
	raw = trimmed(raw)
	if len(raw) == 0 {
		return nil
	}
	switch raw[0] {
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil
		}
		return entries
	case '"':
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil
		}
		return rawSequence(json.RawMessage(encoded))
	case '{':
		return []json.RawMessage{raw}
	default:
		return nil
	}
}

func normalizePaymentDetails(raw json.RawMessage) map[string]string {
	raw = trimmed(raw)
	details := map[string]string{}
	if len(raw) == 0 {
		return details
	}
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return details
		}
		return normalizePaymentDetails(json.RawMessage(encoded))
	}
	var loose map[string]any
	if err := json.Unmarshal(raw, &loose); err != nil {
		return details
	}
	for key, value := range loose {
		switch v := value.(type) {
		case string:
			details[key] = v
		case float64:
			details[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			// skip
		default:
			details[key] = fmt.Sprint(v)
		}
	}
	return details
}

// coerceNumber turns a JSON number or numeric string into a float64. The
// second return reports whether the field was present at all; garbage that is
// present coerces to 0.
func coerceNumber(raw json.RawMessage) (float64, bool) {
	raw = trimmed(raw)
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return n, true
		}
	}
	return 0, true
}

// itemsSubtotal computes sum(price*quantity) with decimal arithmetic to avoid
// accumulating float drift across lines.
func itemsSubtotal(items []domain.LineItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}

func sum(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Float64()
	return f
}

func trimmed(raw json.RawMessage) json.RawMessage {
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	return raw
}
