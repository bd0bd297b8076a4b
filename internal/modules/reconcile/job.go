package reconcile

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

// Summary is the outcome of one reconciliation run. Updated counts orders
// whose update was staged; on a fatal batch failure the last staged batch may
// not have been committed, which is safe because the run is re-runnable.
type Summary struct {
	Updated      int
	EmptyVendors int
	Errors       int
	Total        int
}

// Job backfills the denormalized vendor_ids field onto orders that do not
// have it yet. Orders already populated are skipped as reconciled, even if
// their products changed afterwards; there is no invalidation path.
type Job struct {
	orders    order.Repository
	batchSize int
	logger    *log.Logger
}

// Option configures a Job.
type Option func(*Job)

// WithBatchSize overrides the per-commit write limit. Values outside
// (0, order.MaxBatchWrites] fall back to the store maximum.
func WithBatchSize(n int) Option {
	return func(j *Job) { j.batchSize = n }
}

// WithLogger redirects the job's progress output.
func WithLogger(l *log.Logger) Option {
	return func(j *Job) { j.logger = l }
}

// NewJob creates a reconciliation job over the given order repository.
func NewJob(orders order.Repository, opts ...Option) *Job {
	j := &Job{
		orders:    orders,
		batchSize: order.MaxBatchWrites,
		logger:    log.New(os.Stdout, "", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run processes the full order collection once. Failures on a single order
// are counted and skipped; a failed batch commit aborts the run and is
// reported with enough context for a safe re-run.
func (j *Job) Run(ctx context.Context) (Summary, error) {
	orders, err := j.orders.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list orders: %w", err)
	}

	sum := Summary{Total: len(orders)}
	if len(orders) == 0 {
		j.logger.Println("no orders to reconcile")
		return sum, nil
	}
	j.logger.Printf("found %d orders to process", len(orders))

	b := newBatch(j.orders, j.batchSize)
	for i, o := range orders {
		if err := ctx.Err(); err != nil {
			return sum, fmt.Errorf("cancelled after %d of %d orders: %w", i, len(orders), err)
		}

		upd, skip, err := stageOrder(o)
		if err != nil {
			j.logger.Printf("record error: %v", err)
			sum.Errors++
			continue
		}
		switch skip {
		case skipPopulated:
			continue
		case skipNoVendors:
			j.logger.Printf("order %s has no vendors in its products", o.ID)
			sum.EmptyVendors++
			continue
		}

		if err := b.Add(ctx, *upd); err != nil {
			return sum, fmt.Errorf("after %d of %d orders: %w", i+1, len(orders), err)
		}
		sum.Updated++
		j.logger.Printf("order %s: staged %d vendor ids", o.ID, len(upd.VendorIDs))
	}

	if err := b.Flush(ctx); err != nil {
		return sum, err
	}

	j.logger.Printf("reconciliation done: %d updated, %d without vendors, %d errors, %d total (%d batches)",
		sum.Updated, sum.EmptyVendors, sum.Errors, sum.Total, b.Commits())
	return sum, nil
}

type skipReason int

const (
	skipNone skipReason = iota
	skipPopulated
	skipNoVendors
)

// stageOrder derives one order's update. A panic while reading a malformed
// record is contained here so the run can move on to the next order.
func stageOrder(o *order.Order) (upd *order.VendorIDUpdate, skip skipReason, err error) {
	id := "?"
	defer func() {
		if r := recover(); r != nil {
			upd, skip = nil, skipNone
			err = fmt.Errorf("order %s: %v", id, r)
		}
	}()

	if o == nil {
		return nil, skipNone, fmt.Errorf("nil order record")
	}
	id = o.ID

	if len(o.VendorIDs) > 0 {
		return nil, skipPopulated, nil
	}
	ids := order.ExtractVendorIDs(o.Products)
	if len(ids) == 0 {
		return nil, skipNoVendors, nil
	}
	return &order.VendorIDUpdate{OrderID: o.ID, VendorIDs: ids}, skipNone, nil
}
