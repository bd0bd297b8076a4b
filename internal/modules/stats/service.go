package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agromarket/agromarket-backend/internal/modules/catalog"
	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

// lookupConcurrency bounds how many product lookups run at once while
// resolving one order's line items.
const lookupConcurrency = 8

// OrderLister is the read side of the order store needed here.
type OrderLister interface {
	ListAll(ctx context.Context) ([]*order.Order, error)
}

// ProductFinder resolves products for line items missing a vendor id.
// Satisfied by catalog.Repository.
type ProductFinder interface {
	GetByID(ctx context.Context, id string) (*catalog.Product, error)
}

// Service computes a vendor's sales from the order collection. It never
// writes; vendor membership is derived on the fly for the requesting vendor.
type Service struct {
	orders   OrderLister
	products ProductFinder
	now      func() time.Time
}

func NewService(orders OrderLister, products ProductFinder) *Service {
	return &Service{orders: orders, products: products, now: time.Now}
}

// LoadSales returns the vendor's sales, most recent first. A line item
// belongs to the vendor when its own vendor id matches, or, failing that,
// when the product it references carries the vendor's id. Product lookup
// failures leave the item unattributed instead of failing the whole load.
func (s *Service) LoadSales(ctx context.Context, vendorID string) ([]Sale, error) {
	viewer := strings.TrimSpace(vendorID)
	if viewer == "" {
		return nil, fmt.Errorf("vendor id is required")
	}

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	var sales []Sale
	for _, o := range orders {
		matched := s.matchItems(ctx, o, viewer)
		if len(matched) == 0 {
			continue
		}

		var total float64
		for _, item := range matched {
			total += item.TotalPrice
		}

		orderStatus := matched[0].LineStatus
		if orderStatus == "" {
			orderStatus = o.OrderStatus
		}
		if orderStatus == "" {
			orderStatus = DefaultOrderStatus
		}

		sales = append(sales, Sale{
			OrderID:      o.ID,
			PurchaseDate: o.PurchaseTime(s.now()),
			Items:        matched,
			Total:        total,
			Status:       o.Status,
			OrderStatus:  orderStatus,
		})
	}

	sort.SliceStable(sales, func(i, j int) bool {
		return sales[i].PurchaseDate.After(sales[j].PurchaseDate)
	})
	return sales, nil
}

// matchItems resolves every line item's vendor id, looking the product up
// when the item does not carry one. Lookups for one order run concurrently;
// all of them finish before membership is decided.
func (s *Service) matchItems(ctx context.Context, o *order.Order, viewer string) []order.LineItem {
	resolved := make([]string, len(o.Products))

	g := new(errgroup.Group)
	g.SetLimit(lookupConcurrency)
	for i := range o.Products {
		item := o.Products[i]
		g.Go(func() error {
			id := strings.TrimSpace(item.VendorID)
			if id == "" && item.ProductID != "" {
				if p, err := s.products.GetByID(ctx, item.ProductID); err == nil && p != nil {
					id = strings.TrimSpace(p.VendorID)
				}
			}
			resolved[i] = id
			return nil
		})
	}
	_ = g.Wait()

	var matched []order.LineItem
	for i, item := range o.Products {
		if resolved[i] == viewer {
			item.VendorID = resolved[i]
			matched = append(matched, item)
		}
	}
	return matched
}
