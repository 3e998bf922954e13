package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// CustomerHandler serves the customer management endpoints
type CustomerHandler struct {
	customers *services.CustomerService
}

func NewCustomerHandler(customers *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// List returns a page of customers with optional search and filters
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	filter := services.CustomerFilter{
		Search:  c.Query("search"),
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	customers, info, err := h.customers.List(c.Context(), filter, pageParams(c))
	if err != nil {
		return err
	}
	return pagedResponse(c, customers, info)
}

// View returns a single customer by id
func (h *CustomerHandler) View(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	customer, err := h.customers.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Create adds a new customer
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in models.Customer
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	customer, err := h.customers.Create(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// Update modifies an existing customer
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in models.Customer
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	customer, err := h.customers.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(customer)
}

// Delete removes a customer without orders
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.customers.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search returns customers matching the term across name and phone
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	customers, err := h.customers.Search(c.Context(), c.Params("term"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":  customers,
		"count": len(customers),
	})
}
