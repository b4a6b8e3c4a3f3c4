// Package http exposes the catalog over the REST API.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/qashop/storefront-api/internal/domains/catalog/domain"
	"github.com/qashop/storefront-api/internal/domains/catalog/ports"
	"github.com/qashop/storefront-api/internal/shared/httperr"
)

// CatalogAPI wires HTTP transport with the catalog provider.
type CatalogAPI struct {
	provider ports.Provider
}

func NewCatalogAPI(provider ports.Provider) CatalogAPI {
	return CatalogAPI{provider: provider}
}

// Register mounts the catalog routes on the group.
func (api CatalogAPI) Register(r gin.IRoutes) {
	r.GET("/api/products", api.ListProducts)
}

// Get /api/products
// Product list, optionally filtered to in-stock entries with ?inStock=true.
func (api CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.provider.Products(c.Request.Context())
	if err != nil {
		httperr.Respond(c, http.StatusInternalServerError, "Unable to fetch products")
		return
	}
	if c.Query("inStock") == "true" {
		filtered := make([]domain.Product, 0, len(products))
		for _, product := range products {
			if product.InStock {
				filtered = append(filtered, product)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, products)
}
