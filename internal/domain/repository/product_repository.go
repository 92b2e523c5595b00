package repository

import "github.com/stoyanovb/gradina-api/internal/domain/entity"

// ProductRepository is the persistence port for catalog products.
type ProductRepository interface {
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// List returns active products; b2bOnly narrows to B2B-visible ones.
	List(b2bOnly bool, limit, offset int) ([]entity.Product, error)
	Delete(id string) error
}
