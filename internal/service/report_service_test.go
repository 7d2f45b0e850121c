package service

import (
	"errors"
	"testing"

	"stocktrack/internal/apperr"
	"stocktrack/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowStockBoundary(t *testing.T) {
	env := newTestEnv(t)

	quantities := []int{5, 9, 10, 11}
	for i, q := range quantities {
		_, err := env.inventory.CreateItem(&ItemInput{
			Name:      []string{"A", "B", "C", "D"}[i],
			UnitPrice: decimal.RequireFromString("1.00"),
			Quantity:  q,
		})
		require.NoError(t, err)
	}

	entries, err := env.reports.LowStockReport(10)
	require.NoError(t, err)
	require.Len(t, entries, 2, "threshold is a strict less-than")

	got := map[string]int{}
	for _, e := range entries {
		got[e.Name] = e.Quantity
	}
	assert.Equal(t, map[string]int{"A": 5, "B": 9}, got)
}

func TestLowStockDefaultThreshold(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Scarce",
		UnitPrice: decimal.RequireFromString("1.00"),
		Quantity:  9,
	})
	require.NoError(t, err)

	entries, err := env.reports.LowStockReport(0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Scarce", entries[0].Name)
}

func TestAssembleInvoiceTotals(t *testing.T) {
	env := newTestEnv(t)

	customerID, err := env.parties.CreateParty(model.KindCustomer, &model.Party{
		Name:    "Harbor Builders",
		Address: "2 Quay Street",
	})
	require.NoError(t, err)

	itemA, err := env.inventory.CreateItem(&ItemInput{
		Name: "Beam", UnitPrice: decimal.RequireFromString("10.00"), Quantity: 50,
	})
	require.NoError(t, err)
	itemB, err := env.inventory.CreateItem(&ItemInput{
		Name: "Bracket", UnitPrice: decimal.RequireFromString("5.00"), Quantity: 50,
	})
	require.NoError(t, err)

	orderID, err := env.orders.CreateOrder(model.KindSales, &OrderInput{
		PartyID:   &customerID,
		OrderDate: testDate(),
		Status:    model.StatusPending,
	})
	require.NoError(t, err)

	_, err = env.orders.AddLine(model.KindSales, orderID, &LineInput{
		ItemID: itemA, Quantity: 2, Price: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	_, err = env.orders.AddLine(model.KindSales, orderID, &LineInput{
		ItemID: itemB, Quantity: 3, Price: decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)

	data, err := env.reports.AssembleInvoice(orderID)
	require.NoError(t, err)

	assert.Equal(t, "Harbor Builders", data.CustomerName)
	assert.Equal(t, "2 Quay Street", data.CustomerAddress)
	require.Len(t, data.Lines, 2)
	assert.Equal(t, "20.00", data.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "15.00", data.Lines[1].LineTotal.StringFixed(2))
	assert.Equal(t, "35.00", data.TotalAmount.StringFixed(2))
}

func TestAssembleInvoiceNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reports.AssembleInvoice(9999)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestAssembleInvoiceDanglingCustomer(t *testing.T) {
	env := newTestEnv(t)

	customerID, err := env.parties.CreateParty(model.KindCustomer, &model.Party{Name: "Short Lived"})
	require.NoError(t, err)

	orderID, err := env.orders.CreateOrder(model.KindSales, &OrderInput{
		PartyID:   &customerID,
		OrderDate: testDate(),
		Status:    model.StatusPending,
	})
	require.NoError(t, err)

	// Party deletion is not blocked by referencing orders; assembly falls
	// back to placeholder text instead of failing.
	require.NoError(t, env.parties.DeleteParty(model.KindCustomer, customerID))

	data, err := env.reports.AssembleInvoice(orderID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown Customer", data.CustomerName)
	assert.Empty(t, data.CustomerAddress)
}

func TestAssembleInvoiceDanglingItem(t *testing.T) {
	env := newTestEnv(t)

	itemID, err := env.inventory.CreateItem(&ItemInput{
		Name: "Ephemeral", UnitPrice: decimal.RequireFromString("4.00"), Quantity: 1,
	})
	require.NoError(t, err)

	orderID, err := env.orders.CreateOrder(model.KindSales, &OrderInput{
		PartyID:   uintPtr(1),
		OrderDate: testDate(),
		Status:    model.StatusPending,
	})
	require.NoError(t, err)
	_, err = env.orders.AddLine(model.KindSales, orderID, &LineInput{
		ItemID: itemID, Quantity: 2, Price: decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)

	require.NoError(t, env.inventory.DeleteItem(itemID))

	data, err := env.reports.AssembleInvoice(orderID)
	require.NoError(t, err)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "Unknown Item", data.Lines[0].ItemName)
	assert.Equal(t, "8.00", data.TotalAmount.StringFixed(2))
}

func TestInvoiceEndToEnd(t *testing.T) {
	env := newTestEnv(t)

	customerID, err := env.parties.CreateParty(model.KindCustomer, &model.Party{Name: "RetailCustomer"})
	require.NoError(t, err)

	itemID, err := env.inventory.CreateItem(&ItemInput{
		Name:      "Widget",
		UnitPrice: decimal.RequireFromString("9.99"),
		Quantity:  3,
	})
	require.NoError(t, err)

	orderID, err := env.orders.CreateOrder(model.KindSales, &OrderInput{
		PartyID:   &customerID,
		OrderDate: testDate(),
		Status:    model.StatusPending,
	})
	require.NoError(t, err)

	_, err = env.orders.AddLine(model.KindSales, orderID, &LineInput{
		ItemID:   itemID,
		Quantity: 2,
		Price:    decimal.RequireFromString("9.99"),
	})
	require.NoError(t, err)

	data, err := env.reports.AssembleInvoice(orderID)
	require.NoError(t, err)

	assert.Equal(t, "RetailCustomer", data.CustomerName)
	require.Len(t, data.Lines, 1)
	assert.Equal(t, "Widget", data.Lines[0].ItemName)
	assert.Equal(t, "19.98", data.TotalAmount.StringFixed(2))

	// Stock is never adjusted by order activity.
	item, err := env.inventory.GetItem(itemID)
	require.NoError(t, err)
	require.NotNil(t, item.Level)
	assert.Equal(t, 3, item.Level.Quantity)
}
