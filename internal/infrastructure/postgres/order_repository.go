package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements OrderRepository over PostgreSQL. Create needs its
// own transaction for the order + items pair, so this adapter takes the
// pool rather than a Querier.
type OrderRepo struct {
	pool *pgxpool.Pool
}

// NewOrderRepository constructs the adapter.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

const orderColumns = `id, order_number, company_id, status, subtotal,
	discount_percent, discount_amount, total_amount, notes, admin_notes,
	tracking_number, confirmed_at, shipped_at, delivered_at, cancelled_at,
	created_at, updated_at`

// Create persists the order and its line items in one transaction.
func (r *OrderRepo) Create(o *entity.Order) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderQuery := `
		INSERT INTO b2b_orders
			(id, order_number, company_id, status, subtotal,
			 discount_percent, discount_amount, total_amount, notes, admin_notes,
			 tracking_number, confirmed_at, shipped_at, delivered_at, cancelled_at,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = tx.Exec(ctx, orderQuery,
		o.ID, o.OrderNumber, o.CompanyID, string(o.Status), o.Subtotal,
		o.DiscountPercent, o.DiscountAmount, o.TotalAmount, o.Notes, o.AdminNotes,
		o.TrackingNumber, o.ConfirmedAt, o.ShippedAt, o.DeliveredAt, o.CancelledAt,
		o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}

	itemQuery := `
		INSERT INTO b2b_order_items
			(id, order_id, product_id, product_name, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for _, item := range o.Items {
		if _, err := tx.Exec(ctx, itemQuery,
			item.ID, item.OrderID, item.ProductID, item.ProductName,
			item.Quantity, item.UnitPrice, item.TotalPrice,
		); err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID loads one order with its items, or nil when missing. No join to
// the companies table, so the order stays readable after the company is
// deleted.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM b2b_orders WHERE id = $1`
	o, err := scanOrder(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.items(id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return o, nil
}

// ListByCompany returns a partner's orders newest first, without items.
func (r *OrderRepo) ListByCompany(companyID string, limit, offset int) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM b2b_orders
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, companyID, limit, offset)
}

// List returns orders for the back office, optionally filtered by status.
func (r *OrderRepo) List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM b2b_orders
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	return r.list(query, string(status), limit, offset)
}

func (r *OrderRepo) list(query string, arg any, limit, offset int) ([]entity.Order, error) {
	rows, err := r.pool.Query(context.Background(), query, arg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

// UpdateStatus writes the transition fields conditionally on the previous
// status still matching; zero affected rows means another transition won
// the race.
func (r *OrderRepo) UpdateStatus(o *entity.Order, expected entity.OrderStatus) error {
	query := `
		UPDATE b2b_orders
		SET status = $2, admin_notes = $3, tracking_number = $4,
		    confirmed_at = $5, shipped_at = $6, delivered_at = $7, cancelled_at = $8,
		    updated_at = $9
		WHERE id = $1 AND status = $10`
	tag, err := r.pool.Exec(context.Background(), query,
		o.ID, string(o.Status), o.AdminNotes, o.TrackingNumber,
		o.ConfirmedAt, o.ShippedAt, o.DeliveredAt, o.CancelledAt,
		o.UpdatedAt, string(expected),
	)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

func (r *OrderRepo) items(orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, total_price
		FROM b2b_order_items
		WHERE order_id = $1
		ORDER BY product_name`
	rows, err := r.pool.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()

	var out []entity.OrderItem
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(
			&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.Quantity, &it.UnitPrice, &it.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	var o entity.Order
	var status string
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CompanyID, &status, &o.Subtotal,
		&o.DiscountPercent, &o.DiscountAmount, &o.TotalAmount, &o.Notes, &o.AdminNotes,
		&o.TrackingNumber, &o.ConfirmedAt, &o.ShippedAt, &o.DeliveredAt, &o.CancelledAt,
		&o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = entity.OrderStatus(status)
	return &o, nil
}
