package postgres

import (
	"context"
	"fmt"

	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implements CompanyRepository over PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository constructs the adapter.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, company_name, eik, mol, email, phone, address,
	password_hash, status, tier, discount_percent, payment_terms_days,
	approved_at, notes, created_at, updated_at`

// Create persists a new company account.
func (r *CompanyRepo) Create(c *entity.Company) error {
	query := `
		INSERT INTO b2b_companies
			(id, company_name, eik, mol, email, phone, address,
			 password_hash, status, tier, discount_percent, payment_terms_days,
			 approved_at, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CompanyName, c.EIK, c.MOL, c.Email, c.Phone, c.Address,
		c.PasswordHash, string(c.Status), tierValue(c.Tier), c.DiscountPercent, c.PaymentTermsDays,
		c.ApprovedAt, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID returns a company, or nil when missing.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.getBy("id", id)
}

// GetByEmail returns a company by login email, or nil when missing.
func (r *CompanyRepo) GetByEmail(email string) (*entity.Company, error) {
	return r.getBy("email", email)
}

// GetByEIK returns a company by tax ID, or nil when missing.
func (r *CompanyRepo) GetByEIK(eik string) (*entity.Company, error) {
	return r.getBy("eik", eik)
}

func (r *CompanyRepo) getBy(column, value string) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM b2b_companies WHERE ` + column + ` = $1`
	c, err := scanCompany(r.q.QueryRow(context.Background(), query, value))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by %s: %w", column, err)
	}
	return c, nil
}

// List returns companies newest first, optionally filtered by status.
func (r *CompanyRepo) List(status entity.CompanyStatus, limit, offset int) ([]entity.Company, error) {
	query := `
		SELECT ` + companyColumns + `
		FROM b2b_companies
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, string(status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []entity.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// UpdateStatus writes the workflow fields conditionally on the row still
// holding the expected status; a lost race surfaces as
// ErrConcurrentModification instead of silently overwriting.
func (r *CompanyRepo) UpdateStatus(c *entity.Company, expected entity.CompanyStatus) error {
	query := `
		UPDATE b2b_companies
		SET status = $2, tier = $3, discount_percent = $4, payment_terms_days = $5,
		    approved_at = $6, notes = $7, updated_at = $8
		WHERE id = $1 AND status = $9`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, string(c.Status), tierValue(c.Tier), c.DiscountPercent, c.PaymentTermsDays,
		c.ApprovedAt, c.Notes, c.UpdatedAt, string(expected),
	)
	if err != nil {
		return fmt.Errorf("update company status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// Delete removes the account. Orders keep their company_id and stay
// readable as historic records.
func (r *CompanyRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM b2b_companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*entity.Company, error) {
	var c entity.Company
	var status string
	var tier *string
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.EIK, &c.MOL, &c.Email, &c.Phone, &c.Address,
		&c.PasswordHash, &status, &tier, &c.DiscountPercent, &c.PaymentTermsDays,
		&c.ApprovedAt, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = entity.CompanyStatus(status)
	if tier != nil {
		t := entity.Tier(*tier)
		c.Tier = &t
	}
	return &c, nil
}

func tierValue(t *entity.Tier) *string {
	if t == nil {
		return nil
	}
	s := string(*t)
	return &s
}
