package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/usecase"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// CatalogHandler serves the storefront product listings. Prices follow the
// store settings (hide-prices flag, EUR rate); the B2B variant adds the
// partner's tier price.
type CatalogHandler struct {
	productUC  *usecase.ProductUseCase
	settingsUC *usecase.SettingsUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(productUC *usecase.ProductUseCase, settingsUC *usecase.SettingsUseCase) *CatalogHandler {
	return &CatalogHandler{productUC: productUC, settingsUC: settingsUC}
}

// Public lists the retail catalog.
// GET /api/catalog
func (h *CatalogHandler) Public(c *fiber.Ctx) error {
	return h.list(c, "")
}

// B2B lists the wholesale catalog with the partner's tier prices.
// GET /api/b2b/catalog
func (h *CatalogHandler) B2B(c *fiber.Ctx) error {
	tier := ""
	if claims := GetClaims(c); claims != nil {
		tier = claims.Tier
	}
	return h.list(c, entity.Tier(tier))
}

func (h *CatalogHandler) list(c *fiber.Ctx, tier entity.Tier) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалидни параметри"})
	}
	page.DefaultPage()

	settings, err := h.settingsUC.Get(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	items, err := h.productUC.Catalog(c.Context(), settings, tier, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "products": items})
}
