package domain

// Product is a catalog entry. The catalog is a read-only collaborator: the
// storefront core consumes it but never mutates it.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	InStock     bool    `json:"inStock"`
}
