package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/config"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/database"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with sample data")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check database connection and schema
	if err := database.CheckConnection(database.DB); err != nil {
		logrus.Fatalf("Database connection check failed: %v", err)
	}

	// Run migration if requested
	if *migrate {
		logrus.Info("Running database migration...")
		if err := database.AutoMigrate(database.DB); err != nil {
			logrus.Fatalf("Failed to migrate database: %v", err)
		}
		logrus.Info("Migration completed successfully")
	}

	// Seed database if requested
	if *seed {
		logrus.Info("Seeding database with sample data...")
		if err := database.SeedData(database.DB); err != nil {
			logrus.Fatalf("Failed to seed database: %v", err)
		}
		logrus.Info("Database seeded successfully")
	}

	// Create and start web server
	server := web.NewServer(database.DB)

	// Start server in a goroutine
	go func() {
		if err := server.Start(cfg.App.Port); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Setup graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for interrupt signal
	<-quit
	logrus.Info("Shutting down server...")
	if err := server.Shutdown(); err != nil {
		logrus.Errorf("Server shutdown error: %v", err)
	}
}

func showHelp() {
	logrus.Info(`
Orders Web API Server

Usage:
  go run main.go [options]

Options:
  -migrate  Run GORM AutoMigrate on startup
  -seed     Seed database with sample data
  -help     Show this help message

Examples:
  # Start server only
  go run main.go

  # Start server with migration
  go run main.go -migrate

  # Fresh start with migration and sample data
  go run main.go -migrate -seed`)
}
