package order

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agromarket/agromarket-backend/internal/modules/user"
)

// VendorDirectory resolves vendor display data from the user store.
type VendorDirectory interface {
	GetUserByID(ctx context.Context, id string) (*user.User, error)
}

// Service defines the buyer-facing order business logic.
type Service interface {
	// ListBuyerOrders returns a buyer's orders, most recent first, with
	// vendor display names filled in on each line item.
	ListBuyerOrders(ctx context.Context, buyerID string) ([]*Order, error)
}

type service struct {
	repo    Repository
	vendors VendorDirectory
	now     func() time.Time
}

// NewService creates a new order service.
func NewService(repo Repository, vendors VendorDirectory) Service {
	return &service{repo: repo, vendors: vendors, now: time.Now}
}

func (s *service) ListBuyerOrders(ctx context.Context, buyerID string) ([]*Order, error) {
	if strings.TrimSpace(buyerID) == "" {
		return nil, fmt.Errorf("buyer id is required")
	}

	orders, err := s.repo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	// Collect the vendor ids that still need a display name, then load each
	// vendor once no matter how many items reference it.
	names := map[string]string{}
	for _, o := range orders {
		for _, item := range o.Products {
			id := strings.TrimSpace(item.VendorID)
			if id != "" && item.VendorName == "" {
				names[id] = ""
			}
		}
	}
	for id := range names {
		names[id] = s.vendorName(ctx, id)
	}

	for _, o := range orders {
		for i := range o.Products {
			if o.Products[i].VendorName != "" {
				continue
			}
			if name, ok := names[strings.TrimSpace(o.Products[i].VendorID)]; ok {
				o.Products[i].VendorName = name
			}
		}
	}

	now := s.now()
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].PurchaseTime(now).After(orders[j].PurchaseTime(now))
	})
	return orders, nil
}

// vendorName falls back through the vendor's profile fields; a failed lookup
// degrades to a generic label rather than failing the listing.
func (s *service) vendorName(ctx context.Context, vendorID string) string {
	u, err := s.vendors.GetUserByID(ctx, vendorID)
	if err != nil || u == nil {
		return "Vendor"
	}
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.StoreName != "" {
		return u.StoreName
	}
	if at := strings.Index(u.Email, "@"); at > 0 {
		return u.Email[:at]
	}
	return "Vendor"
}
