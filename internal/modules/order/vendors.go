package order

import "strings"

// ExtractVendorIDs returns the distinct vendor ids referenced by the given
// line items, preserving first-seen order. Blank and whitespace-only ids are
// dropped; items without a vendor id contribute nothing. Line-item counts are
// small, so the membership check stays linear.
func ExtractVendorIDs(items []LineItem) []string {
	var ids []string
	for _, item := range items {
		id := strings.TrimSpace(item.VendorID)
		if id == "" {
			continue
		}
		seen := false
		for _, v := range ids {
			if v == id {
				seen = true
				break
			}
		}
		if !seen {
			ids = append(ids, id)
		}
	}
	return ids
}
