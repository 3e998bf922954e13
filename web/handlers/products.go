package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// ProductHandler serves the product catalog endpoints
type ProductHandler struct {
	products *services.ProductService
}

func NewProductHandler(products *services.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

// List returns a page of products with optional search and filters
func (h *ProductHandler) List(c *fiber.Ctx) error {
	minPrice, err := queryDecimal(c, "min_price")
	if err != nil {
		return err
	}
	maxPrice, err := queryDecimal(c, "max_price")
	if err != nil {
		return err
	}
	discontinued, err := queryBool(c, "discontinued")
	if err != nil {
		return err
	}

	filter := services.ProductFilter{
		Search:       c.Query("search"),
		SupplierID:   uint(c.QueryInt("supplier_id", 0)),
		MinPrice:     minPrice,
		MaxPrice:     maxPrice,
		Discontinued: discontinued,
	}

	products, info, err := h.products.List(c.Context(), filter, pageParams(c))
	if err != nil {
		return err
	}
	return pagedResponse(c, products, info)
}

// View returns a single product by id
func (h *ProductHandler) View(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.ByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Create adds a new product
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in models.Product
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	product, err := h.products.Create(c.Context(), &in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// Update modifies an existing product
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var in models.Product
	if err := c.BodyParser(&in); err != nil {
		return errors.Wrap(services.ErrInvalidInput, "invalid request body")
	}

	product, err := h.products.Update(c.Context(), id, &in)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Delete removes a product never referenced by order items
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.products.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Discontinue marks a product as no longer orderable
func (h *ProductHandler) Discontinue(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.Discontinue(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Reactivate puts a discontinued product back on sale
func (h *ProductHandler) Reactivate(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.products.Reactivate(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// Search returns products matching the term by name
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	products, err := h.products.Search(c.Context(), c.Params("term"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data":  products,
		"count": len(products),
	})
}
