package order

import "context"

// MaxBatchWrites is the store's limit on operations per committed batch.
const MaxBatchWrites = 500

// VendorIDUpdate stages the denormalized vendor ids for one order.
type VendorIDUpdate struct {
	OrderID   string
	VendorIDs []string
}

// Repository defines data access for orders.
type Repository interface {
	// ListAll returns a full snapshot of the order collection.
	ListAll(ctx context.Context) ([]*Order, error)

	// ListByBuyer returns all orders placed by a specific buyer.
	ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error)

	// CommitVendorIDs applies the staged vendor-id updates as a single
	// atomic batch. At most MaxBatchWrites updates are accepted per call.
	CommitVendorIDs(ctx context.Context, updates []VendorIDUpdate) error
}
