package repository

import "github.com/stoyanovb/gradina-api/internal/domain/entity"

// CompanyRepository is the persistence port for B2B partner accounts.
type CompanyRepository interface {
	Create(c *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	GetByEmail(email string) (*entity.Company, error)
	GetByEIK(eik string) (*entity.Company, error)
	List(status entity.CompanyStatus, limit, offset int) ([]entity.Company, error)
	// UpdateStatus persists the status fields conditionally: the row is
	// written only while its status still equals expected. Returns
	// domain.ErrConcurrentModification when another writer got there first.
	UpdateStatus(c *entity.Company, expected entity.CompanyStatus) error
	Delete(id string) error
}
