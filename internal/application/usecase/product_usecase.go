package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// ProductUseCase is catalog CRUD plus the storefront/B2B catalog views.
type ProductUseCase struct {
	productRepo repository.ProductRepository
	policy      pricing.Policy
}

// NewProductUseCase constructs the use case; policy is the shared tier
// table used for the B2B price preview.
func NewProductUseCase(productRepo repository.ProductRepository, policy pricing.Policy) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, policy: policy}
}

// Create adds a catalog product.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}
	if existing, err := uc.productRepo.GetBySKU(in.SKU); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		SKU:         in.SKU,
		Name:        in.Name,
		LatinName:   in.LatinName,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Active:      true,
		B2BVisible:  in.B2BVisible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces the catalog fields of a product. The price change
// affects future orders only; placed orders keep their snapshots.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}
	product, err := uc.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.LatinName = in.LatinName
	product.Category = in.Category
	product.Description = in.Description
	product.Price = in.Price
	product.ImageURL = in.ImageURL
	product.B2BVisible = in.B2BVisible
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID loads one product.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List returns products for the back office.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]entity.Product, error) {
	return uc.productRepo.List(false, limit, offset)
}

// Delete deactivates a product reference-safely: ledger entries and order
// snapshots keep pointing at it.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.productRepo.Delete(id)
}

// Catalog renders the storefront view. settings arrives per request (no
// global state); tier is empty for anonymous visitors and set for
// authenticated partners, in which case the tier-discounted price is
// included. Display prices are rounded to two decimals here and only here.
func (uc *ProductUseCase) Catalog(ctx context.Context, settings entity.StoreSettings, tier entity.Tier, limit, offset int) ([]dto.CatalogItemDTO, error) {
	b2bOnly := tier != ""
	products, err := uc.productRepo.List(b2bOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CatalogItemDTO, 0, len(products))
	for _, p := range products {
		item := dto.CatalogItemDTO{
			ID:        p.ID,
			SKU:       p.SKU,
			Name:      p.Name,
			LatinName: p.LatinName,
			Category:  p.Category,
			ImageURL:  p.ImageURL,
		}
		if !settings.HidePrices {
			item.PriceBGN = p.Price.StringFixed(2)
			if settings.EURRate.IsPositive() {
				item.PriceEUR = p.Price.Div(settings.EURRate).StringFixed(2)
			}
			if tier != "" && tier.Valid() {
				item.B2BPrice = uc.policy.PriceFor(p.Price, tier).StringFixed(2)
			}
		}
		items = append(items, item)
	}
	return items, nil
}
