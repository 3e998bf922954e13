package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/database"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/query"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
)

// parseID reads a positive integer route parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.Wrapf(services.ErrInvalidInput, "invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// pageParams reads page and page_size query parameters. Out-of-range
// values fall back to the defaults rather than failing the request.
func pageParams(c *fiber.Ctx) query.Params {
	return query.NewParams(c.QueryInt("page", 1), c.QueryInt("page_size", query.DefaultPageSize))
}

// pagedResponse is the envelope for every paginated listing.
func pagedResponse(c *fiber.Ctx, data interface{}, info query.PageInfo) error {
	return c.JSON(fiber.Map{
		"data":        data,
		"total_count": info.TotalCount,
		"page":        info.Page,
		"page_size":   info.PageSize,
		"total_pages": info.TotalPages,
	})
}

func queryDecimal(c *fiber.Ctx, name string) (*decimal.Decimal, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.Wrapf(services.ErrInvalidInput, "invalid %s %q", name, raw)
	}
	return &d, nil
}

func queryDate(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, errors.Wrapf(services.ErrInvalidInput, "invalid %s %q, expected YYYY-MM-DD", name, raw)
	}
	return &t, nil
}

func queryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Wrapf(services.ErrInvalidInput, "invalid %s %q", name, raw)
	}
	return &b, nil
}

// GetSQLLogs returns the recent SQL queries captured by the debug logger
func GetSQLLogs(c *fiber.Ctx) error {
	queries := database.SQLLogger.GetQueries()
	return c.JSON(fiber.Map{
		"count":   len(queries),
		"queries": queries,
	})
}

// ClearSQLLogs clears the captured SQL queries
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{
		"message": "SQL logs cleared",
	})
}
