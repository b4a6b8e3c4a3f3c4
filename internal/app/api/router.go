package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/qashop/storefront-api/internal/app/api/middleware"
	cataloghttp "github.com/qashop/storefront-api/internal/domains/catalog/adapters/http"
	ordershttp "github.com/qashop/storefront-api/internal/domains/orders/adapters/http"
)

// NewRouter assembles the gin engine with the shared middleware chain and
// mounts every bounded-context handler.
func NewRouter(serviceName string, logger *slog.Logger, ordersAPI ordershttp.OrdersAPI, catalogAPI cataloghttp.CatalogAPI) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(middleware.Logging(logger))
	router.Use(middleware.Metrics())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ordersAPI.Register(router)
	catalogAPI.Register(router)

	return router
}
