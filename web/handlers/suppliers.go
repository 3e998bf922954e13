package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// SupplierHandler serves the supplier management endpoints
type SupplierHandler struct {
	suppliers *services.SupplierService
}

func NewSupplierHandler(suppliers *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// List returns a page of suppliers with optional search and filters
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	filter := services.SupplierFilter{
		Search:  c.Query("search"),
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	suppliers, info, err := h.suppliers.List(c.Context(), filter, pageParams(c))
	if err != nil {
		return err
	}
	return pagedResponse(c, suppliers, info)
}

// View returns a single supplier by id
func (h *SupplierHandler) View(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.suppliers.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(supplier)
}

// Create adds a new supplier
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in models.Supplier
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	supplier, err := h.suppliers.Create(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// Update modifies an existing supplier
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in models.Supplier
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	supplier, err := h.suppliers.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(supplier)
}

// Delete removes a supplier without products
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.suppliers.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Search returns suppliers matching the term across company, contact and phone
func (h *SupplierHandler) Search(c *fiber.Ctx) error {
	suppliers, err := h.suppliers.Search(c.Context(), c.Params("term"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":  suppliers,
		"count": len(suppliers),
	})
}
