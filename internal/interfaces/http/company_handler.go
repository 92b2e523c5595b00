package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/b2b"
	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// CompanyHandler serves B2B partner self-service (register, login) and the
// back-office approval workflow.
type CompanyHandler struct {
	uc *b2b.CompanyUseCase
}

// NewCompanyHandler builds the handler.
func NewCompanyHandler(uc *b2b.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Register creates a pending B2B account.
// POST /api/b2b/register
func (h *CompanyHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	company, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toCompanyResponse(company))
}

// Login authenticates a partner. Pending, rejected and suspended accounts
// are rejected with distinct codes, all distinct from a bad password.
// POST /api/b2b/login
func (h *CompanyHandler) Login(c *fiber.Ctx) error {
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

// Me returns the authenticated partner's own account.
// GET /api/b2b/me
func (h *CompanyHandler) Me(c *fiber.Ctx) error {
	company, err := h.uc.GetByID(c.Context(), GetSubjectID(c))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// List returns companies, optionally filtered by ?status=.
// GET /api/admin/companies
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалидни параметри"})
	}
	page.DefaultPage()

	status := entity.CompanyStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалиден статус"})
	}

	companies, err := h.uc.List(c.Context(), status, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.CompanyResponse, 0, len(companies))
	for i := range companies {
		out = append(out, toCompanyResponse(&companies[i]))
	}
	return c.JSON(fiber.Map{"total": len(out), "companies": out})
}

// GetByID returns one company.
// GET /api/admin/companies/:id
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	company, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// Approve approves a pending company with the tier from the body.
// POST /api/admin/companies/:id/approve
func (h *CompanyHandler) Approve(c *fiber.Ctx) error {
	var in dto.ApproveCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	company, err := h.uc.Approve(c.Context(), c.Params("id"), entity.Tier(in.Tier), in.Notes)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// Reject declines a pending registration.
// POST /api/admin/companies/:id/reject
func (h *CompanyHandler) Reject(c *fiber.Ctx) error {
	company, err := h.uc.Reject(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// Suspend blocks an approved company.
// POST /api/admin/companies/:id/suspend
func (h *CompanyHandler) Suspend(c *fiber.Ctx) error {
	company, err := h.uc.Suspend(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// Reactivate re-approves a rejected or suspended company. The original
// approval date is preserved.
// POST /api/admin/companies/:id/reactivate
func (h *CompanyHandler) Reactivate(c *fiber.Ctx) error {
	var in dto.ApproveCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	company, err := h.uc.Reactivate(c.Context(), c.Params("id"), entity.Tier(in.Tier), in.Notes)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toCompanyResponse(company))
}

// Delete removes a company account.
// DELETE /api/admin/companies/:id
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Фирмата е изтрита"})
}

func toCompanyResponse(company *entity.Company) dto.CompanyResponse {
	tier := ""
	if company.Tier != nil {
		tier = string(*company.Tier)
	}
	return dto.CompanyResponse{
		ID:               company.ID,
		CompanyName:      company.CompanyName,
		EIK:              company.EIK,
		MOL:              company.MOL,
		Email:            company.Email,
		Phone:            company.Phone,
		Address:          company.Address,
		Status:           string(company.Status),
		Tier:             tier,
		DiscountPercent:  company.DiscountPercent.String(),
		PaymentTermsDays: company.PaymentTermsDays,
		ApprovedAt:       company.ApprovedAt,
		Notes:            company.Notes,
		CreatedAt:        company.CreatedAt,
	}
}
