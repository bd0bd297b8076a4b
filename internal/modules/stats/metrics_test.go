package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

func saleOn(t time.Time, total float64, items ...order.LineItem) Sale {
	return Sale{OrderID: "o", PurchaseDate: t, Total: total, Items: items, OrderStatus: "preparing"}
}

func TestBuildMetrics_Totals(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(now.AddDate(0, 0, -1), 10, order.LineItem{Name: "Tomatoes", Quantity: 2, TotalPrice: 10}),
		saleOn(now.AddDate(0, 0, -2), 5, order.LineItem{Name: "Onions", Quantity: 1, TotalPrice: 5}),
	}

	m := BuildMetrics(sales, now, 0)
	require.Equal(t, 15.0, m.TotalRevenue)
	require.Equal(t, 2, m.SaleCount)
	require.Equal(t, 3, m.ItemsSold)
}

func TestBuildMetrics_PeriodFilter(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(now.AddDate(0, 0, -5), 10),
		saleOn(now.AddDate(0, 0, -40), 99),
	}

	m := BuildMetrics(sales, now, 30)
	require.Equal(t, 10.0, m.TotalRevenue)
	require.Equal(t, 1, m.SaleCount)
}

func TestBuildMetrics_MonthBucketsChronological(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), 7),
		saleOn(time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), 3),
		saleOn(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC), 5),
	}

	m := BuildMetrics(sales, now, 0)
	require.Equal(t, []PeriodTotal{
		{Period: "2026-06", Total: 3, Count: 1},
		{Period: "2026-08", Total: 12, Count: 2},
	}, m.ByMonth)
}

func TestBuildMetrics_TopProducts(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		saleOn(now, 0,
			order.LineItem{Name: "Tomatoes", Quantity: 5, TotalPrice: 25},
			order.LineItem{Name: "Onions", Quantity: 2, TotalPrice: 4},
		),
		saleOn(now, 0,
			order.LineItem{Name: "Tomatoes", Quantity: 1, TotalPrice: 5},
			order.LineItem{ProductID: "p9", TotalPrice: 3}, // unnamed, quantity defaults to 1
		),
	}

	m := BuildMetrics(sales, now, 0)
	require.Len(t, m.TopProducts, 3)
	require.Equal(t, ProductCount{Name: "Tomatoes", Quantity: 6, Revenue: 30}, m.TopProducts[0])
	require.Equal(t, ProductCount{Name: "Onions", Quantity: 2, Revenue: 4}, m.TopProducts[1])
	require.Equal(t, ProductCount{Name: "p9", Quantity: 1, Revenue: 3}, m.TopProducts[2])
}

func TestBuildMetrics_StatusBreakdown(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	sales := []Sale{
		{PurchaseDate: now, OrderStatus: "preparing"},
		{PurchaseDate: now, OrderStatus: "delivered"},
		{PurchaseDate: now, OrderStatus: "preparing"},
	}

	m := BuildMetrics(sales, now, 0)
	require.Equal(t, map[string]int{"preparing": 2, "delivered": 1}, m.ByStatus)
}

func TestBuildMetrics_Empty(t *testing.T) {
	m := BuildMetrics(nil, time.Now(), 30)
	require.Zero(t, m.TotalRevenue)
	require.Zero(t, m.SaleCount)
	require.Empty(t, m.ByMonth)
	require.Empty(t, m.ByDay)
	require.Empty(t, m.TopProducts)
	require.Empty(t, m.ByStatus)
}
