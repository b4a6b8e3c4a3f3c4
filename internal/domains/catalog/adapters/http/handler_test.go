package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/qashop/storefront-api/internal/domains/catalog/adapters/static"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCatalogAPI(static.NewProvider()).Register(router)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListProducts(t *testing.T) {
	rec := get(newTestRouter(), "/api/products")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 15)
	require.Equal(t, "prod-1", products[0]["id"])
	require.Equal(t, "4K-27", products[0]["sku"])
}

func TestListProducts_InStockFilter(t *testing.T) {
	rec := get(newTestRouter(), "/api/products?inStock=true")

	require.Equal(t, http.StatusOK, rec.Code)
	var products []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 11)
	for _, product := range products {
		require.Equal(t, true, product["inStock"])
	}
}
