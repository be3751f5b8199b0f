package handler

import (
	"errors"

	"go-inventory-web/internal/client"
	"go-inventory-web/internal/model"
	"go-inventory-web/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const msgOrderFailed = "Error processing order"

type OrderHandler struct {
	orders    service.OrderService
	inventory service.InventoryService
	log       *logrus.Logger
}

func NewOrderHandler(orders service.OrderService, inventory service.InventoryService, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{orders: orders, inventory: inventory, log: log}
}

// Place submits an order and re-fetches the product collection on success so
// the grid shows the decremented quantity. On failure the order form is
// re-rendered with the backend's message when it provided one.
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var dto model.OrderDto
	if err := c.BodyParser(&dto); err != nil {
		return h.renderOrderError(c, dto, msgOrderFailed)
	}

	if _, err := h.orders.Place(ctx, dto); err != nil {
		h.log.WithError(err).Error("Order placement failed")
		msg := msgOrderFailed
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			msg = apiErr.Message
		}
		return h.renderOrderError(c, dto, msg)
	}

	if err := h.inventory.Refresh(ctx); err != nil {
		h.log.WithError(err).Warn("Product refresh after order failed")
	}

	return c.Redirect("/", fiber.StatusSeeOther)
}

func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.orders.List(c.UserContext())
	if err != nil {
		h.log.WithError(err).Error("Order list fetch failed")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Order History",
			"Message": "Error loading orders",
		})
	}

	return c.Render("orders", fiber.Map{"Orders": orders})
}

func (h *OrderHandler) Detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Redirect("/orders", fiber.StatusSeeOther)
	}

	order, err := h.orders.Get(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("error", fiber.Map{
				"Title":   "Order Not Found",
				"Message": "The requested order does not exist",
			})
		}
		h.log.WithError(err).Error("Order fetch failed")
		return c.Status(fiber.StatusBadGateway).Render("error", fiber.Map{
			"Title":   "Order",
			"Message": "Error loading order",
		})
	}

	return c.Render("order", fiber.Map{"Order": order})
}

func (h *OrderHandler) renderOrderError(c *fiber.Ctx, dto model.OrderDto, msg string) error {
	product, ok := h.inventory.ProductByID(dto.ProductID)
	if !ok {
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	data := listPageData(c, h.inventory, h.log)
	data["OrderProduct"] = product
	quantity := dto.Quantity
	if quantity < 1 {
		quantity = 1
	}
	data["OrderQuantity"] = quantity
	data["OrderTotal"] = product.Price * float64(quantity)
	data["OrderError"] = msg
	return c.Status(fiber.StatusBadRequest).Render("index", data)
}
