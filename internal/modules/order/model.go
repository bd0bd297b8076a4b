package order

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Order represents a stored purchase. Orders are written by the storefront
// as loose documents, so everything nested lives in the products payload and
// older records carry legacy field spellings.
type Order struct {
	ID           string     `json:"id"`
	BuyerID      string     `json:"buyer_id,omitempty"`
	Products     []LineItem `json:"products"`
	VendorIDs    []string   `json:"vendor_ids,omitempty"`
	PurchaseDate *time.Time `json:"purchase_date,omitempty"`
	CreatedAt    string     `json:"created_at,omitempty"` // ISO string kept for records predating purchase_date
	Status       string     `json:"status,omitempty"`
	OrderStatus  string     `json:"order_status,omitempty"`
}

// LineItem is one purchased product embedded in an order. It has no identity
// of its own at the storage layer.
type LineItem struct {
	ProductID  string  `json:"product_id,omitempty"`
	VendorID   string  `json:"vendor_id,omitempty"`
	VendorName string  `json:"vendor_name,omitempty"`
	Name       string  `json:"name,omitempty"`
	Quantity   int     `json:"quantity,omitempty"`
	TotalPrice float64 `json:"total_price,omitempty"`
	LineStatus string  `json:"line_status,omitempty"`
}

// UnmarshalJSON normalizes historical schema drift at the decode boundary:
// the vendor id may be stored under "vendor_id" or the older "vendorId", and
// prices written by early storefront versions can be strings or null.
func (li *LineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ProductID      string    `json:"product_id"`
		VendorID       string    `json:"vendor_id"`
		LegacyVendorID string    `json:"vendorId"`
		VendorName     string    `json:"vendor_name"`
		Name           string    `json:"name"`
		Quantity       int       `json:"quantity"`
		TotalPrice     flexPrice `json:"total_price"`
		LineStatus     string    `json:"line_status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	li.ProductID = raw.ProductID
	li.VendorID = raw.VendorID
	if li.VendorID == "" {
		li.VendorID = raw.LegacyVendorID
	}
	li.VendorName = raw.VendorName
	li.Name = raw.Name
	li.Quantity = raw.Quantity
	li.TotalPrice = float64(raw.TotalPrice)
	li.LineStatus = raw.LineStatus
	return nil
}

// flexPrice decodes a price that may be a number, a numeric string, or null.
// Anything unparseable counts as zero rather than failing the whole order.
type flexPrice float64

func (p *flexPrice) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*p = 0
			return nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*p = 0
			return nil
		}
		*p = flexPrice(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*p = 0
		return nil
	}
	*p = flexPrice(f)
	return nil
}

// createdAtLayouts covers the timestamp spellings found in legacy created_at
// strings, most to least specific.
var createdAtLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PurchaseTime resolves the order's effective purchase timestamp: the native
// purchase_date when set, else the parsed created_at string, else now.
func (o *Order) PurchaseTime(now time.Time) time.Time {
	if o.PurchaseDate != nil {
		return *o.PurchaseDate
	}
	if s := strings.TrimSpace(o.CreatedAt); s != "" {
		for _, layout := range createdAtLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	}
	return now
}
