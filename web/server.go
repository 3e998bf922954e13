package web

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/services"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/web/handlers"
)

// Server represents the web server
type Server struct {
	app *fiber.App
}

// NewServer creates a new Fiber server wired to the given database
func NewServer(db *gorm.DB) *Server {
	customers := store.NewCustomerStore(db)
	suppliers := store.NewSupplierStore(db)
	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db)

	customerHandler := handlers.NewCustomerHandler(services.NewCustomerService(customers, orders))
	supplierHandler := handlers.NewSupplierHandler(services.NewSupplierService(suppliers, products))
	productHandler := handlers.NewProductHandler(services.NewProductService(products, suppliers, orders))
	orderHandler := handlers.NewOrderHandler(services.NewOrderService(orders, customers, products))
	statsHandler := handlers.NewStatsHandler(services.NewStatsService(customers, suppliers, products, orders))

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path} ${error}\n",
	}))

	setupRoutes(app, customerHandler, supplierHandler, productHandler, orderHandler, statsHandler)

	return &Server{app: app}
}

// Start starts the server
func (s *Server) Start(port string) error {
	logrus.Infof("Server starting on http://localhost:%s", port)
	return s.app.Listen(":" + port)
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the underlying Fiber app, mainly for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// errorHandler maps the service error taxonomy onto HTTP status codes.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound):
		code = fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidInput):
		code = fiber.StatusBadRequest
	case errors.Is(err, services.ErrInvalidOperation):
		code = fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrConflict):
		code = fiber.StatusConflict
	default:
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
	}

	if code == fiber.StatusInternalServerError {
		logrus.Errorf("ERROR [%s %s]: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App,
	customers *handlers.CustomerHandler,
	suppliers *handlers.SupplierHandler,
	products *handlers.ProductHandler,
	orders *handlers.OrderHandler,
	stats *handlers.StatsHandler,
) {
	// Debug endpoint for SQL logs
	app.Get("/api/debug/sql", handlers.GetSQLLogs)
	app.Delete("/api/debug/sql", handlers.ClearSQLLogs)

	// Customer management
	c := app.Group("/customers")
	c.Get("/", customers.List)
	c.Post("/", customers.Create)
	c.Get("/search/:term", customers.Search)
	c.Get("/:id", customers.View)
	c.Put("/:id", customers.Update)
	c.Delete("/:id", customers.Delete)

	// Supplier management
	s := app.Group("/suppliers")
	s.Get("/", suppliers.List)
	s.Post("/", suppliers.Create)
	s.Get("/search/:term", suppliers.Search)
	s.Get("/:id", suppliers.View)
	s.Put("/:id", suppliers.Update)
	s.Delete("/:id", suppliers.Delete)

	// Product management
	p := app.Group("/products")
	p.Get("/", products.List)
	p.Post("/", products.Create)
	p.Get("/search/:term", products.Search)
	p.Get("/:id", products.View)
	p.Put("/:id", products.Update)
	p.Delete("/:id", products.Delete)
	p.Post("/:id/discontinue", products.Discontinue)
	p.Post("/:id/reactivate", products.Reactivate)

	// Order aggregate
	o := app.Group("/orders")
	o.Get("/", orders.List)
	o.Post("/", orders.Create)
	o.Get("/:id", orders.View)
	o.Delete("/:id", orders.Delete)

	// Order item mutations
	items := app.Group("/order-items")
	items.Put("/:id", orders.UpdateItem)
	items.Delete("/:id", orders.DeleteItem)

	// Statistics
	st := app.Group("/stats")
	st.Get("/overview", stats.Overview)
	st.Get("/customers", stats.Customers)
	st.Get("/products", stats.Products)
	st.Get("/suppliers", stats.Suppliers)
	st.Get("/revenue", stats.Revenue)
}
