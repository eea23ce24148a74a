package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/api/dto"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/domain"
	"github.com/Sheryaar-Ansar/sufyanessence-admin/internal/service"
	apperrors "github.com/Sheryaar-Ansar/sufyanessence-admin/pkg/util"
)

// OrdersHandler exposes order lifecycle tracking.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orders *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /admin/orders with an optional ?status= filter.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status"))
	orders, err := h.orders.List(c.UserContext(), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orders})
}

// Get handles GET /admin/orders/:id.
func (h *OrdersHandler) Get(c *fiber.Ctx) error {
	order, err := h.orders.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// UpdateStatus handles PUT /admin/orders/:id/status.
func (h *OrdersHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	order, err := h.orders.Transition(c.UserContext(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": order})
}

// ExportCSV handles GET /admin/orders/export.
func (h *OrdersHandler) ExportCSV(c *fiber.Ctx) error {
	status := domain.OrderStatus(c.Query("status"))

	var buf bytes.Buffer
	if err := h.orders.ExportCSV(c.UserContext(), status, &buf); err != nil {
		return err
	}

	filename := fmt.Sprintf("orders-%s.csv", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
