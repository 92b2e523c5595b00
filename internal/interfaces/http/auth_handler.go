package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/auth"
	"github.com/stoyanovb/gradina-api/internal/application/dto"
)

// AuthHandler serves back-office authentication.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login authenticates an admin/editor user and returns a bearer token.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	resp, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(resp)
}
