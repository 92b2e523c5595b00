package repository

import "github.com/stoyanovb/gradina-api/internal/domain/entity"

// OrderRepository is the persistence port for B2B orders and their items.
type OrderRepository interface {
	// Create persists the order together with its line items.
	Create(o *entity.Order) error
	// GetByID loads the order with items. Historic orders must load even
	// when the owning company has been deleted.
	GetByID(id string) (*entity.Order, error)
	ListByCompany(companyID string, limit, offset int) ([]entity.Order, error)
	List(status entity.OrderStatus, limit, offset int) ([]entity.Order, error)
	// UpdateStatus persists status, timestamps, tracking number and admin
	// notes conditionally on the previous status still matching expected.
	// Returns domain.ErrConcurrentModification on a lost race.
	UpdateStatus(o *entity.Order, expected entity.OrderStatus) error
}
