package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// StatsHandler serves the statistics endpoints
type StatsHandler struct {
	stats *services.StatsService
}

func NewStatsHandler(stats *services.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview returns entity counts and overall revenue figures
func (h *StatsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.stats.Overview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(overview)
}

// Customers returns customer counts by country and top customers by revenue
func (h *StatsHandler) Customers(c *fiber.Ctx) error {
	stats, err := h.stats.CustomerStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Products returns top products by quantity sold and by revenue
func (h *StatsHandler) Products(c *fiber.Ctx) error {
	stats, err := h.stats.ProductStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Suppliers returns supplier counts by country and top suppliers by catalog size
func (h *StatsHandler) Suppliers(c *fiber.Ctx) error {
	stats, err := h.stats.SupplierStats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

// Revenue returns revenue bucketed by day, week or month
func (h *StatsHandler) Revenue(c *fiber.Ctx) error {
	from, err := queryDate(c, "from")
	if err != nil {
		return err
	}
	to, err := queryDate(c, "to")
	if err != nil {
		return err
	}

	buckets, err := h.stats.RevenueByPeriod(c.Context(), from, to, services.BucketUnit(c.Query("unit")))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"unit":    c.Query("unit", "day"),
		"buckets": buckets,
	})
}
