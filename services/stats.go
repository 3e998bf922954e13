package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/store"
)

// TopN is the fixed size of every ranking.
const TopN = 5

// Overview is the dashboard summary across all entities.
type Overview struct {
	TotalCustomers    int64           `json:"total_customers"`
	TotalSuppliers    int64           `json:"total_suppliers"`
	TotalProducts     int64           `json:"total_products"`
	TotalOrders       int64           `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// CountByCategory is one row of a grouped count (e.g. customers per country).
type CountByCategory struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TopNEntry is one row of a top-N ranking by a chosen metric.
type TopNEntry struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// CustomerStatistics groups the customer-derived views.
type CustomerStatistics struct {
	ByCountry    []CountByCategory `json:"by_country"`
	TopByRevenue []TopNEntry       `json:"top_by_revenue"`
}

// ProductStatistics groups the product-derived views.
type ProductStatistics struct {
	TopByQuantity []TopNEntry `json:"top_by_quantity"`
	TopByRevenue  []TopNEntry `json:"top_by_revenue"`
}

// SupplierStatistics groups the supplier-derived views.
type SupplierStatistics struct {
	ByCountry         []CountByCategory `json:"by_country"`
	TopByProductCount []TopNEntry       `json:"top_by_product_count"`
}

// RevenueBucket is one period of a time-bucketed revenue series.
type RevenueBucket struct {
	Period     string          `json:"period"`
	OrderCount int64           `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// StatsService computes read-only derived views, always recomputed from the
// current store state.
type StatsService struct {
	customers store.CustomerStore
	suppliers store.SupplierStore
	products  store.ProductStore
	orders    store.OrderStore
}

// NewStatsService creates the statistics engine.
func NewStatsService(customers store.CustomerStore, suppliers store.SupplierStore, products store.ProductStore, orders store.OrderStore) *StatsService {
	return &StatsService{customers: customers, suppliers: suppliers, products: products, orders: orders}
}

// Overview returns entity counts and revenue totals. The average is zero when
// no orders exist.
func (s *StatsService) Overview(ctx context.Context) (*Overview, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load customers")
	}
	suppliers, err := s.suppliers.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load suppliers")
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load products")
	}
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load orders")
	}

	totalRevenue := decimal.Zero
	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.TotalAmount)
	}
	avg := decimal.Zero
	if len(orders) > 0 {
		avg = totalRevenue.DivRound(decimal.NewFromInt(int64(len(orders))), 2)
	}

	return &Overview{
		TotalCustomers:    int64(len(customers)),
		TotalSuppliers:    int64(len(suppliers)),
		TotalProducts:     int64(len(products)),
		TotalOrders:       int64(len(orders)),
		TotalRevenue:      totalRevenue,
		AverageOrderValue: avg,
	}, nil
}

// CustomerStats returns customers grouped by country and the top-5 customers
// by order revenue.
func (s *StatsService) CustomerStats(ctx context.Context) (*CustomerStatistics, error) {
	customers, err := s.customers.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load customers")
	}
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load orders")
	}

	byCountry := map[string]int64{}
	names := map[uint]string{}
	for _, c := range customers {
		byCountry[countryLabel(c.Country)]++
		names[c.CustomerID] = c.FirstName + " " + c.LastName
	}

	revenue := map[uint]decimal.Decimal{}
	for _, o := range orders {
		revenue[o.CustomerID] = revenue[o.CustomerID].Add(o.TotalAmount)
	}

	return &CustomerStatistics{
		ByCountry:    sortedCounts(byCountry),
		TopByRevenue: topEntries(revenue, names),
	}, nil
}

// ProductStats returns the top-5 products by quantity sold and by revenue.
// Revenue uses the snapshot prices recorded on the order items.
func (s *StatsService) ProductStats(ctx context.Context) (*ProductStatistics, error) {
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load products")
	}
	items, err := s.orders.AllItems(ctx)
	if err != nil {
		return nil, storageErr(err, "load order items")
	}

	names := map[uint]string{}
	for _, p := range products {
		names[p.ProductID] = p.ProductName
	}

	quantities := map[uint]decimal.Decimal{}
	revenue := map[uint]decimal.Decimal{}
	for _, it := range items {
		quantities[it.ProductID] = quantities[it.ProductID].Add(decimal.NewFromInt(int64(it.Quantity)))
		revenue[it.ProductID] = revenue[it.ProductID].Add(it.Subtotal())
	}

	return &ProductStatistics{
		TopByQuantity: topEntries(quantities, names),
		TopByRevenue:  topEntries(revenue, names),
	}, nil
}

// SupplierStats returns suppliers grouped by country and the top-5 suppliers
// by product count.
func (s *StatsService) SupplierStats(ctx context.Context) (*SupplierStatistics, error) {
	suppliers, err := s.suppliers.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load suppliers")
	}
	products, err := s.products.All(ctx)
	if err != nil {
		return nil, storageErr(err, "load products")
	}

	byCountry := map[string]int64{}
	names := map[uint]string{}
	for _, sup := range suppliers {
		byCountry[countryLabel(sup.Country)]++
		names[sup.SupplierID] = sup.CompanyName
	}

	productCounts := map[uint]decimal.Decimal{}
	for _, p := range products {
		productCounts[p.SupplierID] = productCounts[p.SupplierID].Add(decimal.NewFromInt(1))
	}

	return &SupplierStatistics{
		ByCountry:         sortedCounts(byCountry),
		TopByProductCount: topEntries(productCounts, names),
	}, nil
}

// BucketUnit selects the revenue series resolution.
type BucketUnit string

const (
	BucketDay   BucketUnit = "day"
	BucketWeek  BucketUnit = "week"
	BucketMonth BucketUnit = "month"
)

// RevenueByPeriod groups orders into day/week/month buckets over the given
// range (default: last 30 days) and returns them sorted ascending by period.
func (s *StatsService) RevenueByPeriod(ctx context.Context, from, to *time.Time, unit BucketUnit) ([]RevenueBucket, error) {
	switch unit {
	case BucketDay, BucketWeek, BucketMonth:
	case "":
		unit = BucketDay
	default:
		return nil, invalidInput(fmt.Sprintf("unknown bucket unit %q", unit))
	}

	now := time.Now().UTC()
	rangeTo := now
	if to != nil {
		rangeTo = to.UTC()
	}
	rangeFrom := rangeTo.AddDate(0, 0, -30)
	if from != nil {
		rangeFrom = from.UTC()
	}
	if rangeFrom.After(rangeTo) {
		return nil, invalidInput("date range start is after its end")
	}

	orders, err := s.orders.Between(ctx, rangeFrom, rangeTo)
	if err != nil {
		return nil, storageErr(err, "load orders between dates")
	}

	type bucket struct {
		key     int
		label   string
		count   int64
		revenue decimal.Decimal
	}
	buckets := map[int]*bucket{}
	for _, o := range orders {
		key, label := periodOf(o.OrderDate.UTC(), unit)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{key: key, label: label, revenue: decimal.Zero}
			buckets[key] = b
		}
		b.count++
		b.revenue = b.revenue.Add(o.TotalAmount)
	}

	ordered := make([]*bucket, 0, len(buckets))
	for _, b := range buckets {
		ordered = append(ordered, b)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })

	series := make([]RevenueBucket, 0, len(ordered))
	for _, b := range ordered {
		series = append(series, RevenueBucket{Period: b.label, OrderCount: b.count, Revenue: b.revenue})
	}
	return series, nil
}

// periodOf maps a timestamp to a sortable bucket key and its display label.
// Week numbers count from the start of the year in 7-day blocks.
func periodOf(t time.Time, unit BucketUnit) (int, string) {
	switch unit {
	case BucketWeek:
		week := (t.YearDay()-1)/7 + 1
		return t.Year()*100 + week, fmt.Sprintf("%d-W%d", t.Year(), week)
	case BucketMonth:
		return t.Year()*100 + int(t.Month()), fmt.Sprintf("%d-%d", t.Year(), int(t.Month()))
	default:
		return t.Year()*10000 + int(t.Month())*100 + t.Day(), t.Format("2006-01-02")
	}
}

func countryLabel(country *string) string {
	if country == nil || *country == "" {
		return "Unknown"
	}
	return *country
}

// sortedCounts flattens a grouped count map, largest group first, category
// name breaking ties.
func sortedCounts(counts map[string]int64) []CountByCategory {
	out := make([]CountByCategory, 0, len(counts))
	for category, count := range counts {
		out = append(out, CountByCategory{Category: category, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// topEntries ranks entities by metric descending, id ascending on ties, and
// keeps the top 5.
func topEntries(metrics map[uint]decimal.Decimal, names map[uint]string) []TopNEntry {
	out := make([]TopNEntry, 0, len(metrics))
	for id, value := range metrics {
		out = append(out, TopNEntry{ID: id, Name: names[id], Value: value})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Value.Equal(out[j].Value) {
			return out[i].Value.GreaterThan(out[j].Value)
		}
		return out[i].ID < out[j].ID
	})
	if len(out) > TopN {
		out = out[:TopN]
	}
	return out
}
