package stats

import (
	"time"

	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

// DefaultOrderStatus is assumed when neither a matching line item nor the
// order itself carries a fulfillment status.
const DefaultOrderStatus = "preparing"

// Sale is one order seen from a single vendor's side: only the line items
// attributed to that vendor, with their own total and status.
type Sale struct {
	OrderID      string           `json:"order_id"`
	PurchaseDate time.Time        `json:"purchase_date"`
	Items        []order.LineItem `json:"items"`
	Total        float64          `json:"total"`
	Status       string           `json:"status,omitempty"`
	OrderStatus  string           `json:"order_status"`
}

// Metrics are the derived figures behind the vendor statistics page.
type Metrics struct {
	TotalRevenue float64        `json:"total_revenue"`
	SaleCount    int            `json:"sale_count"`
	ItemsSold    int            `json:"items_sold"`
	ByMonth      []PeriodTotal  `json:"by_month"`
	ByDay        []PeriodTotal  `json:"by_day"`
	TopProducts  []ProductCount `json:"top_products"`
	ByStatus     map[string]int `json:"by_status"`
}

// PeriodTotal is revenue accumulated over one calendar bucket.
type PeriodTotal struct {
	Period string  `json:"period"` // "2026-08" or "2026-08-28"
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
}

// ProductCount ranks a product by units sold.
type ProductCount struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
