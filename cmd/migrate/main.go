package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/config"
	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/database"
)

func main() {
	// Command line flags
	var (
		drop = flag.Bool("drop", false, "Drop all tables before migration")
		help = flag.Bool("help", false, "Show help")
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

	fmt.Println("🚀 Starting Database Migration Tool")
	fmt.Printf("📊 Database: %s@%s:%s/%s\n",
		cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		logrus.Fatalf("❌ Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Check connection
	if err := database.CheckConnection(database.DB); err != nil {
		logrus.Warnf("⚠️  Warning: %v", err)
	}

	// Drop tables if requested
	if *drop {
		fmt.Println("⚠️  Dropping all tables...")
		if err := dropAllTables(); err != nil {
			logrus.Fatalf("❌ Failed to drop tables: %v", err)
		}
		fmt.Println("✅ All tables dropped")
	}

	// Run AutoMigrate
	fmt.Println("🔄 Running GORM AutoMigrate...")
	if err := database.AutoMigrate(database.DB); err != nil {
		logrus.Fatalf("❌ Failed to run migration: %v", err)
	}

	fmt.Println("✅ Migration completed successfully!")

	// Show table count
	var tableCount int64
	err = database.DB.Raw(`
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
	`).Scan(&tableCount).Error

	if err == nil {
		fmt.Printf("📊 Total tables created: %d\n", tableCount)
	}
}

func dropAllTables() error {
	var tables []string
	err := database.DB.Raw(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
	`).Scan(&tables).Error

	if err != nil {
		return err
	}

	// Disable foreign key checks temporarily
	if err := database.DB.Exec("SET session_replication_role = 'replica'").Error; err != nil {
		logrus.Warnf("Could not disable FK checks: %v", err)
	}

	for _, table := range tables {
		fmt.Printf("  Dropping table: %s\n", table)
		if err := database.DB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			logrus.Warnf("Failed to drop %s: %v", table, err)
		}
	}

	// Re-enable foreign key checks
	if err := database.DB.Exec("SET session_replication_role = 'origin'").Error; err != nil {
		logrus.Warnf("Could not re-enable FK checks: %v", err)
	}

	return nil
}

func showHelp() {
	fmt.Println(`
Database Migration Tool for the Orders Web API

Usage:
  go run cmd/migrate/main.go [options]

Options:
  -drop     Drop all tables before migration (WARNING: Data loss!)
  -help     Show this help message

Examples:
  # Migrate the schema
  go run cmd/migrate/main.go

  # Recreate everything from scratch
  go run cmd/migrate/main.go -drop`)
}
