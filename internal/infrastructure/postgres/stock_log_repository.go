package postgres

import (
	"context"
	"fmt"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implements the append-only ledger over PostgreSQL. There
// is deliberately no update or delete here.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository constructs the adapter; pass a pool or a tx.
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Append inserts one ledger entry.
func (r *StockLogRepo) Append(e *entity.StockLogEntry) error {
	query := `
		INSERT INTO stock_log
			(id, product_id, type, quantity, previous_quantity, new_quantity,
			 reason, notes, document_number, unit_price, total_price, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.ProductID, string(e.Type), e.Quantity, e.PreviousQuantity, e.NewQuantity,
		e.Reason, e.Notes, e.DocumentNumber, e.UnitPrice, e.TotalPrice, e.CreatedAt, e.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("append stock log: %w", err)
	}
	return nil
}

// History lists entries newest first with optional product/type filters.
func (r *StockLogRepo) History(productID string, movementType entity.MovementType, limit, offset int) ([]entity.StockLogEntry, error) {
	query := `
		SELECT id, product_id, type, quantity, previous_quantity, new_quantity,
		       reason, notes, document_number, unit_price, total_price, created_at, created_by
		FROM stock_log
		WHERE ($1 = '' OR product_id = $1)
		  AND ($2 = '' OR type = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, productID, string(movementType), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("stock history: %w", err)
	}
	defer rows.Close()

	var out []entity.StockLogEntry
	for rows.Next() {
		var e entity.StockLogEntry
		var typ string
		if err := rows.Scan(
			&e.ID, &e.ProductID, &typ, &e.Quantity, &e.PreviousQuantity, &e.NewQuantity,
			&e.Reason, &e.Notes, &e.DocumentNumber, &e.UnitPrice, &e.TotalPrice, &e.CreatedAt, &e.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock log entry: %w", err)
		}
		e.Type = entity.MovementType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}
