package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const orderColumns = `id, buyer_id, products, vendor_ids, purchase_date, created_at, status, order_status`

func scanOrder(scan func(...interface{}) error) (*Order, error) {
	o := &Order{}
	var products []byte
	var vendorIDs pq.StringArray
	var purchaseDate sql.NullTime
	err := scan(&o.ID, &o.BuyerID, &products, &vendorIDs, &purchaseDate,
		&o.CreatedAt, &o.Status, &o.OrderStatus)
	if err != nil {
		return nil, err
	}
	if len(products) > 0 {
		if err := json.Unmarshal(products, &o.Products); err != nil {
			return nil, fmt.Errorf("decode products for order %s: %w", o.ID, err)
		}
	}
	o.VendorIDs = []string(vendorIDs)
	if purchaseDate.Valid {
		t := purchaseDate.Time
		o.PurchaseDate = &t
	}
	return o, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *postgresRepo) ListByBuyer(ctx context.Context, buyerID string) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		WHERE buyer_id = $1`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CommitVendorIDs runs all staged updates inside one transaction, so the
// batch either lands completely or not at all.
func (r *postgresRepo) CommitVendorIDs(ctx context.Context, updates []VendorIDUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	if len(updates) > MaxBatchWrites {
		return fmt.Errorf("batch of %d exceeds the %d-write limit", len(updates), MaxBatchWrites)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range updates {
		_, err := tx.ExecContext(ctx, `
			UPDATE orders SET vendor_ids = $1 WHERE id = $2`,
			pq.Array(u.VendorIDs), u.OrderID)
		if err != nil {
			return fmt.Errorf("update order %s: %w", u.OrderID, err)
		}
	}
	return tx.Commit()
}
