package postgres

import (
	"context"
	"fmt"

	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constructs the adapter; pass a pool or a tx.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, sku, name, latin_name, category, description, price,
	image_url, active, b2b_visible, created_at, updated_at`

// Create persists a new product.
func (r *ProductRepo) Create(p *entity.Product) error {
	query := `
		INSERT INTO products
			(id, sku, name, latin_name, category, description, price,
			 image_url, active, b2b_visible, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.SKU, p.Name, p.LatinName, p.Category, p.Description, p.Price,
		p.ImageURL, p.Active, p.B2BVisible, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update persists catalog field changes.
func (r *ProductRepo) Update(p *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, latin_name = $3, category = $4, description = $5,
		    price = $6, image_url = $7, b2b_visible = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, p.LatinName, p.Category, p.Description,
		p.Price, p.ImageURL, p.B2BVisible, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// GetByID returns a product, or nil when missing.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getBy("id", id)
}

// GetBySKU returns a product by SKU, or nil when missing.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	return r.getBy("sku", sku)
}

func (r *ProductRepo) getBy(column, value string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE ` + column + ` = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.SKU, &p.Name, &p.LatinName, &p.Category, &p.Description, &p.Price,
		&p.ImageURL, &p.Active, &p.B2BVisible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by %s: %w", column, err)
	}
	return &p, nil
}

// List returns active products, optionally narrowed to B2B-visible ones.
func (r *ProductRepo) List(b2bOnly bool, limit, offset int) ([]entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE active AND ($1 = false OR b2b_visible)
		ORDER BY name
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, b2bOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.LatinName, &p.Category, &p.Description, &p.Price,
			&p.ImageURL, &p.Active, &p.B2BVisible, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Delete deactivates the product. Ledger entries and order snapshots keep
// referencing the row, so it is never physically removed.
func (r *ProductRepo) Delete(id string) error {
	query := `UPDATE products SET active = false, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("deactivate product: %w", err)
	}
	return nil
}
