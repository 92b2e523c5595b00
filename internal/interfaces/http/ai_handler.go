package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/usecase"
)

// AIHandler serves the AI-assisted product description generator.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler builds the handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// DescribeProduct generates a Bulgarian product description draft.
// POST /api/admin/ai/describe
func (h *AIHandler) DescribeProduct(c *fiber.Ctx) error {
	var in dto.DescribeProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	resp, err := h.uc.DescribeProduct(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(resp)
}
