// Package static serves the fixed demo catalog.
package static

import (
	"context"

	"github.com/qashop/storefront-api/internal/domains/catalog/domain"
	"github.com/qashop/storefront-api/internal/domains/catalog/ports"
)

var _ ports.Provider = (*Provider)(nil)

// Provider returns the built-in product list.
type Provider struct {
	products []domain.Product
}

func NewProvider() *Provider {
	return &Provider{products: catalogProducts()}
}

func (p *Provider) Products(_ context.Context) ([]domain.Product, error) {
	list := make([]domain.Product, len(p.products))
	copy(list, p.products)
	return list, nil
}

func (p *Provider) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, product := range p.products {
		if product.ID == id {
			clone := product
			return &clone, nil
		}
	}
	return nil, ports.ErrProductNotFound
}

func catalogProducts() []domain.Product {
	return []domain.Product{
		{ID: "prod-1", Name: "4K Monitor", Price: 399.99, Description: "27-inch 4K UHD monitor with HDR support", SKU: "4K-27", InStock: true},
		{ID: "prod-2", Name: "Business Laptop", Price: 899.99, Description: "Lightweight laptop perfect for professionals", SKU: "BL-01", InStock: true},
		{ID: "prod-3", Name: "Cable Management Kit", Price: 19.99, Description: "Cable management kit for clean desk setups", SKU: "CM-05", InStock: false},
		{ID: "prod-4", Name: "Desk Lamp", Price: 54.99, Description: "LED desk lamp with adjustable brightness", SKU: "DL-10", InStock: true},
		{ID: "prod-5", Name: "Ergonomic Chair", Price: 299.99, Description: "Mesh office chair with lumbar support", SKU: "EC-22", InStock: true},
		{ID: "prod-6", Name: "Gaming Computer", Price: 1299.99, Description: "High-performance gaming desktop with RGB lighting", SKU: "GC-88", InStock: true},
		{ID: "prod-7", Name: "Gaming Headset", Price: 89.99, Description: "Surround sound headset with noise cancellation", SKU: "GH-19", InStock: true},
		{ID: "prod-8", Name: "Graphics Tablet", Price: 249.99, Description: "Professional drawing tablet with pressure sensitivity", SKU: "GT-40", InStock: true},
		{ID: "prod-9", Name: "HD Webcam", Price: 79.99, Description: "1080p webcam with built-in microphone", SKU: "HW-12", InStock: false},
		{ID: "prod-10", Name: "Mechanical Keyboard", Price: 129.99, Description: "Mechanical keyboard with Cherry MX switches", SKU: "MK-33", InStock: true},
		{ID: "prod-11", Name: "Portable SSD", Price: 159.99, Description: "1TB portable SSD with USB-C connectivity", SKU: "SSD-1TB", InStock: true},
		{ID: "prod-12", Name: "Standing Desk", Price: 449.99, Description: "Electric adjustable standing desk with presets", SKU: "SD-55", InStock: false},
		{ID: "prod-13", Name: "USB-C Hub", Price: 39.99, Description: "7-in-1 USB-C hub with HDMI and card reader", SKU: "HUB-07", InStock: false},
		{ID: "prod-14", Name: "Wireless Charger", Price: 29.99, Description: "Wireless charging pad for phones and earbuds", SKU: "WC-09", InStock: true},
		{ID: "prod-15", Name: "Wireless Mouse", Price: 49.99, Description: "Ergonomic mouse with precision tracking", SKU: "WM-15", InStock: true},
	}
}
