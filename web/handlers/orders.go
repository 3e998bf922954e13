package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// OrderHandler serves the order aggregate endpoints
type OrderHandler struct {
	orders *services.OrderService
}

func NewOrderHandler(orders *services.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type createOrderRequest struct {
	CustomerID uint                      `json:"customer_id"`
	Items      []services.OrderItemInput `json:"items"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// List returns a page of orders with optional filters
func (h *OrderHandler) List(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return err
	}
	minAmount, err := queryDecimal(c, "min_amount")
	if err != nil {
		return err
	}
	maxAmount, err := queryDecimal(c, "max_amount")
	if err != nil {
		return err
	}

	filter := services.OrderFilter{
		CustomerID: uint(c.QueryInt("customer_id", 0)),
		From:       from,
		To:         to,
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
	}

	orders, info, err := h.orders.List(c.Context(), filter, pageParams(c))
	if err != nil {
		return err
	}
	return pagedResponse(c, orders, info)
}

// View returns a single order with its items
func (h *OrderHandler) View(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// Create places a new order for a customer
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in createOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	order, err := h.orders.Create(c.Context(), in.CustomerID, in.Items)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// Delete removes an order and all of its items
func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orders.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateItem changes the quantity of an order item
func (h *OrderHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in updateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	item, err := h.orders.UpdateItemQuantity(c.Context(), id, in.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// DeleteItem removes a single item from an order
func (h *OrderHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orders.DeleteItem(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
