package models

// AllModels returns all model structs for auto-migration
// IMPORTANT: Order matters! Parent tables must be created before child tables
func AllModels() []interface{} {
	return []interface{}{
		// 1. Independent tables (no foreign keys)
		&Customer{},
		&Supplier{},

		// 2. Tables with single dependencies
		&Product{}, // depends on: Supplier
		&Order{},   // depends on: Customer

		// 3. Detail tables
		&OrderItem{}, // depends on: Order, Product
	}
}
