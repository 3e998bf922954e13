package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
)

// AutoMigrate runs auto migration for all models
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("Starting GORM AutoMigrate...")

	migrator := db.Migrator()
	for _, model := range allModelsOrdered() {
		stmt := &gorm.Statement{DB: db}
		tableName := ""
		if err := stmt.Parse(model); err == nil {
			tableName = stmt.Schema.Table
		}

		if !migrator.HasTable(model) {
			if err := migrator.CreateTable(model); err != nil {
				return fmt.Errorf("could not create table %s: %w", tableName, err)
			}
			logrus.Infof("Created table: %s", tableName)
		} else {
			logrus.Infof("Table already exists: %s", tableName)
		}
	}

	if err := CreateForeignKeys(db); err != nil {
		logrus.Warnf("Some foreign keys could not be created: %v", err)
	}
	if err := CreateIndexes(db); err != nil {
		logrus.Warnf("Some indexes could not be created: %v", err)
	}

	logrus.Info("GORM AutoMigrate completed successfully")
	return nil
}

// allModelsOrdered returns the models in FK dependency order.
func allModelsOrdered() []interface{} {
	return models.AllModels()
}

// CreateForeignKeys creates all foreign key constraints
func CreateForeignKeys(db *gorm.DB) error {
	foreignKeys := []struct {
		table     string
		name      string
		column    string
		refTable  string
		refColumn string
	}{
		{"products", "fk_products_supplier", "supplier_id", "suppliers", "supplier_id"},
		{"orders", "fk_orders_customer", "customer_id", "customers", "customer_id"},
		{"order_items", "fk_order_items_order", "order_id", "orders", "order_id"},
		{"order_items", "fk_order_items_product", "product_id", "products", "product_id"},
	}

	for _, fk := range foreignKeys {
		var count int64
		db.Raw(`
			SELECT COUNT(*) FROM information_schema.table_constraints
			WHERE constraint_type = 'FOREIGN KEY'
			AND table_name = ?
			AND constraint_name = ?
		`, fk.table, fk.name).Scan(&count)

		if count > 0 {
			continue
		}

		query := fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(%s)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn,
		)
		if err := db.Exec(query).Error; err != nil {
			logrus.Warnf("Failed to create foreign key %s: %v", fk.name, err)
		} else {
			logrus.Infof("Created foreign key: %s", fk.name)
		}
	}

	return nil
}

// CreateIndexes creates the unique order number index and lookup indexes
func CreateIndexes(db *gorm.DB) error {
	indexes := []struct {
		name  string
		query string
	}{
		// The unique index is the final arbiter of order number uniqueness.
		{"uq_orders_order_number", "CREATE UNIQUE INDEX IF NOT EXISTS uq_orders_order_number ON orders(order_number)"},

		{"idx_orders_customer", "CREATE INDEX IF NOT EXISTS idx_orders_customer ON orders(customer_id)"},
		{"idx_orders_date", "CREATE INDEX IF NOT EXISTS idx_orders_date ON orders(order_date)"},
		{"idx_order_items_order", "CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)"},
		{"idx_order_items_product", "CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)"},
		{"idx_products_supplier", "CREATE INDEX IF NOT EXISTS idx_products_supplier ON products(supplier_id)"},
		{"idx_customers_name", "CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(last_name, first_name)"},
	}

	for _, idx := range indexes {
		if err := db.Exec(idx.query).Error; err != nil {
			if !strings.Contains(err.Error(), "already exists") {
				logrus.Warnf("Failed to create index %s: %v", idx.name, err)
			}
		} else {
			logrus.Infof("Created index: %s", idx.name)
		}
	}

	return nil
}
