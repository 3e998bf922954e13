package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vladimir-Cortes-Developer/OrdersWebAPI/models"
)

func setupOrders(t *testing.T) (*OrderService, *fakeOrderStore, *fakeCustomerStore, *fakeProductStore) {
	t.Helper()
	orders := newFakeOrderStore()
	customers := newFakeCustomerStore()
	products := newFakeProductStore()
	return NewOrderService(orders, customers, products), orders, customers, products
}

func seedCustomer(t *testing.T, customers *fakeCustomerStore) *models.Customer {
	t.Helper()
	c := &models.Customer{FirstName: "Maria", LastName: "Anders"}
	require.NoError(t, customers.Create(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, products *fakeProductStore, name string, price string) *models.Product {
	t.Helper()
	p := &models.Product{
		ProductName: name,
		SupplierID:  1,
		UnitPrice:   decimal.RequireFromString(price),
	}
	require.NoError(t, products.Create(context.Background(), p))
	return p
}

func TestCreateOrder(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")
	chang := seedProduct(t, products, "Chang", "19.50")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{
		{ProductID: chai.ProductID, Quantity: 3},
		{ProductID: chang.ProductID, Quantity: 2},
	})

	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 1, order.Version)
	require.Len(t, order.Items, 2)

	// Prices are snapshotted from the catalog at creation time.
	assert.True(t, order.Items[0].UnitPrice.Equal(decimal.RequireFromString("18.00")))
	assert.True(t, order.Items[1].UnitPrice.Equal(decimal.RequireFromString("19.50")))

	// 3*18.00 + 2*19.50 = 93.00
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("93.00")),
		"total %s", order.TotalAmount)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"), "order number %q", order.OrderNumber)

	saved, err := orders.ByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Len(t, saved.Items, 2)
	assert.True(t, saved.TotalAmount.Equal(order.TotalAmount))
}

func TestCreateOrderRejections(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")

	t.Run("unknown customer", func(t *testing.T) {
		_, err := svc.Create(ctx, 999, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 1}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("no items", func(t *testing.T) {
		_, err := svc.Create(ctx, customer.CustomerID, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: 999, Quantity: 1}})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("discontinued product", func(t *testing.T) {
		stale := seedProduct(t, products, "Stale Ale", "9.00")
		stale.IsDiscontinued = true
		require.NoError(t, products.Update(ctx, stale))

		_, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: stale.ProductID, Quantity: 1}})
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 0}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	// A rejected create leaves nothing behind.
	all, err := orders.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	items, err := orders.AllItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateOrderNumberRetry(t *testing.T) {
	t.Run("recovers within the attempt limit", func(t *testing.T) {
		svc, orders, customers, products := setupOrders(t)
		ctx := context.Background()
		customer := seedCustomer(t, customers)
		chai := seedProduct(t, products, "Chai", "18.00")
		orders.duplicatesLeft = 2

		order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 1}})
		require.NoError(t, err)
		assert.Equal(t, 3, orders.createCalls)
		assert.NotEmpty(t, order.OrderNumber)
	})

	t.Run("gives up after exhausting attempts", func(t *testing.T) {
		svc, orders, customers, products := setupOrders(t)
		ctx := context.Background()
		customer := seedCustomer(t, customers)
		chai := seedProduct(t, products, "Chai", "18.00")
		orders.duplicatesLeft = 3

		_, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 1}})
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, 3, orders.createCalls)
	})
}

func TestPriceSnapshotSurvivesCatalogChange(t *testing.T) {
	svc, _, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 2}})
	require.NoError(t, err)

	// Raise the catalog price after the order exists.
	chai.UnitPrice = decimal.RequireFromString("99.99")
	require.NoError(t, products.Update(ctx, chai))

	item, err := svc.UpdateItemQuantity(ctx, order.Items[0].ItemID, 5)
	require.NoError(t, err)
	assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("18.00")))
	assert.True(t, item.Order.TotalAmount.Equal(decimal.RequireFromString("90.00")),
		"total %s", item.Order.TotalAmount)
}

func TestUpdateItemQuantity(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")
	chang := seedProduct(t, products, "Chang", "19.50")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{
		{ProductID: chai.ProductID, Quantity: 3},
		{ProductID: chang.ProductID, Quantity: 2},
	})
	require.NoError(t, err)

	t.Run("re-derives the total", func(t *testing.T) {
		item, err := svc.UpdateItemQuantity(ctx, order.Items[0].ItemID, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, item.Quantity)

		// 1*18.00 + 2*19.50 = 57.00
		saved, err := orders.ByID(ctx, order.OrderID)
		require.NoError(t, err)
		assert.True(t, saved.TotalAmount.Equal(decimal.RequireFromString("57.00")),
			"total %s", saved.TotalAmount)
		assert.Equal(t, 2, saved.Version)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(ctx, order.Items[0].ItemID, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := svc.UpdateItemQuantity(ctx, 999, 2)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("concurrent modification surfaces a conflict", func(t *testing.T) {
		orders.staleNext = true
		_, err := svc.UpdateItemQuantity(ctx, order.Items[1].ItemID, 4)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestEditWindow(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{
		{ProductID: chai.ProductID, Quantity: 1},
		{ProductID: chai.ProductID, Quantity: 2},
	})
	require.NoError(t, err)

	// Age the order past the window.
	stored, err := orders.ByID(ctx, order.OrderID)
	require.NoError(t, err)
	stored.OrderDate = time.Now().UTC().Add(-EditWindow - time.Hour)
	stored.Items = nil
	orders.byID[order.OrderID] = stored

	_, err = svc.UpdateItemQuantity(ctx, order.Items[0].ItemID, 5)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	err = svc.DeleteItem(ctx, order.Items[0].ItemID)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	err = svc.Delete(ctx, order.OrderID)
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestDeleteItem(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")
	chang := seedProduct(t, products, "Chang", "19.50")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{
		{ProductID: chai.ProductID, Quantity: 3},
		{ProductID: chang.ProductID, Quantity: 2},
	})
	require.NoError(t, err)

	t.Run("removes the item and its share of the total", func(t *testing.T) {
		require.NoError(t, svc.DeleteItem(ctx, order.Items[1].ItemID))

		saved, err := orders.ByID(ctx, order.OrderID)
		require.NoError(t, err)
		require.Len(t, saved.Items, 1)
		assert.True(t, saved.TotalAmount.Equal(decimal.RequireFromString("54.00")),
			"total %s", saved.TotalAmount)
	})

	t.Run("last item cannot be removed", func(t *testing.T) {
		err := svc.DeleteItem(ctx, order.Items[0].ItemID)
		assert.ErrorIs(t, err, ErrInvalidOperation)
	})
}

func TestDeleteOrder(t *testing.T) {
	svc, orders, customers, products := setupOrders(t)
	ctx := context.Background()
	customer := seedCustomer(t, customers)
	chai := seedProduct(t, products, "Chai", "18.00")

	order, err := svc.Create(ctx, customer.CustomerID, []OrderItemInput{{ProductID: chai.ProductID, Quantity: 1}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, order.OrderID))

	_, err = svc.ByID(ctx, order.OrderID)
	assert.ErrorIs(t, err, ErrNotFound)

	items, err := orders.AllItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items, "items must be removed with the order")

	assert.ErrorIs(t, svc.Delete(ctx, order.OrderID), ErrNotFound)
}
