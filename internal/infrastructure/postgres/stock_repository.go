package postgres

import (
	"context"
	"fmt"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implements StockRepository over PostgreSQL (pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository constructs the adapter; pass a pool or a tx.
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `product_id, quantity, min_quantity, location, updated_at`

// Get returns the current stock record, or nil when none exists.
func (r *StockRepo) Get(productID string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records WHERE product_id = $1`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.MinQuantity, &s.Location, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate reads the record under SELECT ... FOR UPDATE so concurrent
// movements on the same product serialize on the row lock. A product
// without a record yet gets a zero-quantity one.
func (r *StockRepo) GetForUpdate(productID string) (*entity.StockRecord, error) {
	query := `SELECT ` + stockColumns + ` FROM stock_records WHERE product_id = $1 FOR UPDATE`
	var s entity.StockRecord
	err := r.q.QueryRow(context.Background(), query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.MinQuantity, &s.Location, &s.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return &entity.StockRecord{ProductID: productID}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserts or updates the stock record of a product.
func (r *StockRepo) Upsert(s *entity.StockRecord) error {
	query := `
		INSERT INTO stock_records (product_id, quantity, min_quantity, location, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity,
		              min_quantity = EXCLUDED.min_quantity,
		              location = EXCLUDED.location,
		              updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, s.ProductID, s.Quantity, s.MinQuantity, s.Location)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListLow returns records at or below their reorder threshold.
func (r *StockRepo) ListLow() ([]entity.StockRecord, error) {
	query := `
		SELECT ` + stockColumns + `
		FROM stock_records
		WHERE quantity <= min_quantity
		ORDER BY quantity - min_quantity ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()

	var out []entity.StockRecord
	for rows.Next() {
		var s entity.StockRecord
		if err := rows.Scan(&s.ProductID, &s.Quantity, &s.MinQuantity, &s.Location, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
