package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/usecase"
)

// SettingsHandler serves the store-wide settings (EUR rate, hide-prices).
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get returns the current settings.
// GET /api/admin/settings
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.uc.Get(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.SettingsResponse{
		EURRate:    settings.EURRate.String(),
		HidePrices: settings.HidePrices,
	})
}

// Update overwrites the settings and invalidates the cache.
// PUT /api/admin/settings
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	settings, err := h.uc.Update(c.Context(), in.EURRate, in.HidePrices)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.SettingsResponse{
		EURRate:    settings.EURRate.String(),
		HidePrices: settings.HidePrices,
	})
}
