// Backfills the denormalized vendor_ids field on existing orders so that
// per-vendor queries and access rules can match on it. One-shot maintenance
// run: safe to re-run, already-populated orders are skipped.
package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	_ "github.com/lib/pq"

	"github.com/agromarket/agromarket-backend/internal/config"
	"github.com/agromarket/agromarket-backend/internal/modules/order"
	"github.com/agromarket/agromarket-backend/internal/modules/reconcile"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("database unreachable: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ReconcileTimeout)
	defer cancel()

	job := reconcile.NewJob(
		order.NewPostgresRepository(db),
		reconcile.WithBatchSize(cfg.ReconcileBatchSize),
		reconcile.WithLogger(logger),
	)

	sum, runErr := job.Run(ctx)

	logger.Println("run summary:")
	logger.Printf("  updated:         %d", sum.Updated)
	logger.Printf("  without vendors: %d", sum.EmptyVendors)
	logger.Printf("  errors:          %d", sum.Errors)
	logger.Printf("  total processed: %d", sum.Total)

	if runErr != nil {
		logger.Fatalf("reconciliation aborted: %v", runErr)
	}
	logger.Println("reconciliation completed")
}
