package catalog

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Product is a marketplace listing owned by a vendor.
type Product struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Price       float64   `json:"price"`
	Unit        string    `json:"unit,omitempty"` // kg, bunch, crate...
	City        string    `json:"city,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UnmarshalJSON accepts the legacy "vendorId" spelling still present in old
// product payloads alongside the canonical "vendor_id".
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	var raw struct {
		alias
		LegacyVendorID string `json:"vendorId"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = Product(raw.alias)
	if p.VendorID == "" {
		p.VendorID = raw.LegacyVendorID
	}
	return nil
}
