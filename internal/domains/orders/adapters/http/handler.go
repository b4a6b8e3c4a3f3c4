// Package http exposes the order intake pipeline and read API over REST.
package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/qashop/storefront-api/internal/domains/orders/adapters/http/mapper"
	"github.com/qashop/storefront-api/internal/domains/orders/application"
	"github.com/qashop/storefront-api/internal/domains/orders/application/types"
	"github.com/qashop/storefront-api/internal/domains/orders/domain"
	"github.com/qashop/storefront-api/internal/domains/orders/ports"
	"github.com/qashop/storefront-api/internal/shared/httperr"
)

// IdempotencyKeyHeader carries the optional client key for replay-safe creation.
const IdempotencyKeyHeader = "Idempotency-Key"

// OrdersAPI wires HTTP transport with the orders service.
type OrdersAPI struct {
	service   ports.Service
	responder *httperr.Responder
}

func NewOrdersAPI(service ports.Service) OrdersAPI {
	return OrdersAPI{
		service:   service,
		responder: httperr.NewResponder(mapOrderError),
	}
}

// Register mounts the order routes on the group. The xlsx export lives at
// /api/orders.xlsx because gin cannot mix a static segment with the
// :identifier wildcard under /api/orders/.
func (api OrdersAPI) Register(r gin.IRoutes) {
	r.GET("/api/orders", api.ListOrders)
	r.GET("/api/orders.xlsx", api.ExportOrders)
	r.GET("/api/orders/:identifier", api.LookupOrder)
	r.POST("/api/orders", api.CreateOrders)
	r.POST("/api/orders/:identifier/cancel", api.CancelOrder)
}

// Get /api/orders
// Full ledger, newest first.
func (api OrdersAPI) ListOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Respond(c, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrders(orders))
}

// Get /api/orders/:identifier
// Email lookup when the identifier contains "@", order-number lookup otherwise.
func (api OrdersAPI) LookupOrder(c *gin.Context) {
	identifier := c.Param("identifier")
	if strings.Contains(identifier, "@") {
		orders, err := api.service.FindByEmail(c.Request.Context(), identifier)
		if err != nil {
			httperr.Respond(c, http.StatusInternalServerError, "Unable to lookup order")
			return
		}
		if len(orders) == 0 {
			httperr.Respond(c, http.StatusNotFound, "No orders found for that email")
			return
		}
		c.JSON(http.StatusOK, mapper.FromDomainOrders(orders))
		return
	}

	order, err := api.service.FindByNumber(c.Request.Context(), identifier)
	if err != nil {
		if application.IsNotFound(err) {
			httperr.Respond(c, http.StatusNotFound, "Order not found")
			return
		}
		httperr.Respond(c, http.StatusInternalServerError, "Unable to lookup order")
		return
	}
	c.JSON(http.StatusOK, mapper.FromDomainOrder(order))
}

// Post /api/orders
// Accepts one raw order object or an array of them.
func (api OrdersAPI) CreateOrders(c *gin.Context) {
	raws, err := decodeRawOrders(c.Request.Body)
	if err != nil {
		httperr.Respond(c, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := api.service.CreateOrders(c.Request.Context(), c.GetHeader(IdempotencyKeyHeader), raws)
	if err != nil {
		api.responder.RespondErrorWithFallback(c, err, "Unable to create order")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Order created",
		"orderNumber":  result.First(),
		"orderNumbers": result.OrderNumbers,
	})
}

// Post /api/orders/:identifier/cancel
func (api OrdersAPI) CancelOrder(c *gin.Context) {
	order, err := api.service.CancelOrder(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		api.responder.RespondErrorWithFallback(c, err, "Unable to cancel order")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "Order cancelled",
		"orderNumber": order.Number,
		"status":      string(order.Status),
	})
}

// Get /api/orders.xlsx
// Spreadsheet download of the full ledger.
func (api OrdersAPI) ExportOrders(c *gin.Context) {
	orders, err := api.service.ListOrders(c.Request.Context())
	if err != nil {
		httperr.Respond(c, http.StatusInternalServerError, "Unable to fetch orders")
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		httperr.Respond(c, http.StatusInternalServerError, "Unable to build export")
		return
	}

	headers := []string{
		"OrderNumber", "CustomerName", "Email", "City", "ZipCode",
		"ShippingMethod", "PaymentMethod", "Items", "Subtotal", "Shipping",
		"Total", "Status", "CreatedAt",
	}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for _, order := range orders {
		transport := mapper.FromDomainOrder(order)
		row := sheet.AddRow()
		row.AddCell().SetValue(transport.OrderNumber)
		row.AddCell().SetValue(transport.CustomerName)
		row.AddCell().SetValue(transport.Email)
		row.AddCell().SetValue(transport.City)
		row.AddCell().SetValue(transport.ZipCode)
		row.AddCell().SetValue(transport.ShippingMethod)
		row.AddCell().SetValue(transport.PaymentMethod)
		row.AddCell().SetValue(itemsSummary(order.Items))
		row.AddCell().SetValue(transport.Subtotal)
		row.AddCell().SetValue(transport.Shipping)
		row.AddCell().SetValue(transport.Total)
		row.AddCell().SetValue(transport.Status)
		row.AddCell().SetValue(transport.CreatedAt)
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}

func itemsSummary(items []domain.LineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.SKU)
	}
	return strings.Join(parts, ",")
}

// decodeRawOrders reads a single raw order object or an array of them.
func decodeRawOrders(body io.Reader) ([]types.RawOrder, error) {
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	payload = bytes.TrimSpace(payload)
	if len(payload) == 0 {
		return nil, errors.New("empty body")
	}
	if payload[0] == '[' {
		var raws []types.RawOrder
		if err := json.Unmarshal(payload, &raws); err != nil {
			return nil, err
		}
		return raws, nil
	}
	var raw types.RawOrder
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, err
	}
	return []types.RawOrder{raw}, nil
}

// mapOrderError resolves pipeline failures to the wire contract.
func mapOrderError(err error) (int, string, bool) {
	var validation *application.ValidationError
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, validation.Error(), true
	case errors.Is(err, application.ErrValidation):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, ports.ErrIdempotencyConflict):
		return http.StatusConflict, "Idempotency key was already used with a different payload", true
	case errors.Is(err, ports.ErrNotFound):
		return http.StatusNotFound, "Order not found", true
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "Order can no longer be cancelled", true
	case errors.Is(err, ports.ErrDuplicateNumber):
		return http.StatusInternalServerError, "Unable to create order", true
	default:
		return 0, "", false
	}
}
