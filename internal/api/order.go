package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/service"
)

type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// CreateOrder handles POST /api/orders.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	req := entity.CheckoutRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request payload"})
	}
	req.IdempotentKey = c.Request().Header.Get("Idempotent-Key")

	orderID, itemsCount, err := h.orderService.Checkout(c.Request().Context(), req)
	if err != nil {
		return errorJSON(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":     "Order created",
		"order_id":    orderID,
		"items_count": itemsCount,
	})
}

// ListOrders handles GET /api/orders with page, limit and status filters.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	status := c.QueryParam("status")

	orders, pagination, err := h.orderService.ListOrders(c.Request().Context(), page, limit, status)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"orders":     orders,
		"pagination": pagination,
	})
}

// GetOrder handles GET /api/orders/:id, returning the order with its line items.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid order ID"})
	}
	details, err := h.orderService.GetOrder(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

// UpdateStatus handles PUT /api/orders.
// The body is form-encoded: id and status.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, _ := strconv.Atoi(c.FormValue("id"))
	status := c.FormValue("status")

	if err := h.orderService.UpdateStatus(c.Request().Context(), id, status); err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "success"})
}
