package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/config"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/database"
)

func main() {
	force := flag.Bool("force", false, "Force re-seed even if data exists")
	help := flag.Bool("help", false, "Show help message")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("🌱 Starting Database Seeding Tool")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}
	fmt.Printf("📊 Database: %s@%s:%s/%s\n\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		logrus.Fatal("Database connection check failed: ", err)
	}

	if *force {
		fmt.Println("⚠️  Force flag enabled. Clearing existing data...")
		// Clear data in reverse dependency order
		tables := []string{
			"order_items",
			"orders",
			"products",
			"suppliers",
			"customers",
		}
		for _, table := range tables {
			if err := database.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				logrus.Warnf("Could not clear %s: %v", table, err)
			}
		}
	}

	if err := database.SeedData(database.DB); err != nil {
		logrus.Fatal("Seeding failed: ", err)
	}

	fmt.Println("✅ Database seeded successfully")
}

func showHelp() {
	fmt.Println(`
Database Seeding Tool for the Orders Web API

Usage:
  go run cmd/seed/main.go [options]

Options:
  -force    Clear existing data before seeding
  -help     Show this help message`)
}
