package reconcile

import (
	"context"
	"fmt"

	"github.com/agromarket/agromarket-backend/internal/modules/order"
)

// batch accumulates staged vendor-id updates and commits them whenever the
// size threshold is reached. The same Flush path handles both the threshold
// commit and the leftover commit at end of iteration.
type batch struct {
	repo    order.Repository
	limit   int
	staged  []order.VendorIDUpdate
	commits int
}

func newBatch(repo order.Repository, limit int) *batch {
	if limit <= 0 || limit > order.MaxBatchWrites {
		limit = order.MaxBatchWrites
	}
	return &batch{repo: repo, limit: limit}
}

// Add stages one update, committing the batch if it is now full.
func (b *batch) Add(ctx context.Context, u order.VendorIDUpdate) error {
	b.staged = append(b.staged, u)
	if len(b.staged) >= b.limit {
		return b.Flush(ctx)
	}
	return nil
}

// Flush commits whatever is staged. A commit failure is fatal for the run;
// already-committed batches stay persisted.
func (b *batch) Flush(ctx context.Context) error {
	if len(b.staged) == 0 {
		return nil
	}
	n := len(b.staged)
	if err := b.repo.CommitVendorIDs(ctx, b.staged); err != nil {
		return fmt.Errorf("commit batch %d (%d writes): %w", b.commits+1, n, err)
	}
	b.commits++
	b.staged = b.staged[:0]
	return nil
}

// Commits reports how many batches have been committed so far.
func (b *batch) Commits() int { return b.commits }
