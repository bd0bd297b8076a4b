package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/agromarket/agromarket-backend/internal/modules/catalog"
	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

type fakeOrders struct {
	orders []*order.Order
	err    error
}

func (f *fakeOrders) ListAll(ctx context.Context) ([]*order.Order, error) {
	return f.orders, f.err
}

type fakeProducts struct {
	products map[string]*catalog.Product
	err      error
	lookups  int
}

func (f *fakeProducts) GetByID(ctx context.Context, id string) (*catalog.Product, error) {
	f.lookups++
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, catalog.ErrNotFound
	}
	return p, nil
}

func newTestService(orders *fakeOrders, products *fakeProducts, now time.Time) *Service {
	s := NewService(orders, products)
	s.now = func() time.Time { return now }
	return s
}

func date(day int) *time.Time {
	t := time.Date(2026, 8, day, 10, 0, 0, 0, time.UTC)
	return &t
}

func TestLoadSales_MatchesOnlyViewerItems(t *testing.T) {
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "o1", PurchaseDate: date(1), Products: []order.LineItem{
			{VendorID: "V1", TotalPrice: 10},
			{VendorID: "V2", TotalPrice: 99},
			{VendorID: "V1", TotalPrice: 2.5},
		}},
		{ID: "o2", PurchaseDate: date(2), Products: []order.LineItem{
			{VendorID: "V2", TotalPrice: 50},
		}},
	}}

	sales, err := newTestService(orders, &fakeProducts{}, time.Now()).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, "o1", sales[0].OrderID)
	require.Len(t, sales[0].Items, 2)
	require.Equal(t, 12.5, sales[0].Total)
}

func TestLoadSales_ResolvesVendorThroughProduct(t *testing.T) {
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "o1", PurchaseDate: date(1), Products: []order.LineItem{
			{ProductID: "p1", TotalPrice: 30}, // vendor id only on the product
		}},
	}}
	products := &fakeProducts{products: map[string]*catalog.Product{
		"p1": {ID: "p1", VendorID: "V1"},
	}}

	sales, err := newTestService(orders, products, time.Now()).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Equal(t, 30.0, sales[0].Total)
	require.Equal(t, 1, products.lookups)
}

func TestLoadSales_LookupFailureExcludesItem(t *testing.T) {
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "o1", PurchaseDate: date(1), Products: []order.LineItem{
			{ProductID: "p1", TotalPrice: 30},
			{VendorID: "V1", TotalPrice: 5},
		}},
	}}
	products := &fakeProducts{err: errors.New("backend unavailable")}

	sales, err := newTestService(orders, products, time.Now()).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.Len(t, sales[0].Items, 1)
	require.Equal(t, 5.0, sales[0].Total)
}

func TestLoadSales_ItemsWithoutVendorNeverMatch(t *testing.T) {
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "o1", PurchaseDate: date(1), Products: []order.LineItem{
			{TotalPrice: 30}, // no vendor id, no product id
		}},
	}}

	sales, err := newTestService(orders, &fakeProducts{}, time.Now()).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Empty(t, sales)
}

func TestLoadSales_SortsByPurchaseDateDescending(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "old", PurchaseDate: date(1), Products: []order.LineItem{{VendorID: "V1"}}},
		{ID: "fallback", CreatedAt: "2026-08-15T09:00:00Z", Products: []order.LineItem{{VendorID: "V1"}}},
		{ID: "new", PurchaseDate: date(20), Products: []order.LineItem{{VendorID: "V1"}}},
	}}

	sales, err := newTestService(orders, &fakeProducts{}, now).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, sales, 3)
	require.Equal(t, "new", sales[0].OrderID)
	require.Equal(t, "fallback", sales[1].OrderID)
	require.Equal(t, "old", sales[2].OrderID)
}

func TestLoadSales_StatusFallbackChain(t *testing.T) {
	orders := &fakeOrders{orders: []*order.Order{
		{ID: "o1", PurchaseDate: date(3), OrderStatus: "shipped", Products: []order.LineItem{
			{VendorID: "V1", LineStatus: "delivered"},
		}},
		{ID: "o2", PurchaseDate: date(2), OrderStatus: "shipped", Products: []order.LineItem{
			{VendorID: "V1"},
		}},
		{ID: "o3", PurchaseDate: date(1), Products: []order.LineItem{
			{VendorID: "V1"},
		}},
	}}

	sales, err := newTestService(orders, &fakeProducts{}, time.Now()).LoadSales(context.Background(), "V1")
	require.NoError(t, err)
	require.Len(t, sales, 3)
	require.Equal(t, "delivered", sales[0].OrderStatus)
	require.Equal(t, "shipped", sales[1].OrderStatus)
	require.Equal(t, DefaultOrderStatus, sales[2].OrderStatus)
}

func TestLoadSales_RequiresVendorID(t *testing.T) {
	_, err := newTestService(&fakeOrders{}, &fakeProducts{}, time.Now()).LoadSales(context.Background(), "  ")
	require.Error(t, err)
}

func TestLoadSales_ListFailurePropagates(t *testing.T) {
	orders := &fakeOrders{err: errors.New("unavailable")}
	_, err := newTestService(orders, &fakeProducts{}, time.Now()).LoadSales(context.Background(), "V1")
	require.Error(t, err)
}
