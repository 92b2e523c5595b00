package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/b2b"
	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/ports"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// OrderHandler serves B2B order placement and the back-office order
// pipeline, including the printable confirmation.
type OrderHandler struct {
	orderUC   *b2b.OrderUseCase
	companyUC *b2b.CompanyUseCase
	pdfGen    ports.OrderPDFGenerator
}

// NewOrderHandler builds the handler.
func NewOrderHandler(orderUC *b2b.OrderUseCase, companyUC *b2b.CompanyUseCase, pdfGen ports.OrderPDFGenerator) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, companyUC: companyUC, pdfGen: pdfGen}
}

// Place submits the authenticated partner's cart.
// POST /api/b2b/orders
func (h *OrderHandler) Place(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	lines := make([]b2b.OrderLine, 0, len(in.Items))
	for _, it := range in.Items {
		lines = append(lines, b2b.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	order, err := h.orderUC.PlaceOrder(c.Context(), GetSubjectID(c), lines, in.Notes)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order))
}

// ListOwn returns the authenticated partner's orders.
// GET /api/b2b/orders
func (h *OrderHandler) ListOwn(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалидни параметри"})
	}
	page.DefaultPage()

	orders, err := h.orderUC.ListByCompany(c.Context(), GetSubjectID(c), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(orders), "orders": toOrderResponses(orders)})
}

// GetOwn returns one of the partner's own orders with its items.
// GET /api/b2b/orders/:id
func (h *OrderHandler) GetOwn(c *fiber.Ctx) error {
	order, err := h.orderUC.GetOwn(c.Context(), GetSubjectID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// DownloadOwnPDF streams the printable confirmation of the partner's own
// order.
// GET /api/b2b/orders/:id/pdf
func (h *OrderHandler) DownloadOwnPDF(c *fiber.Ctx) error {
	order, err := h.orderUC.GetOwn(c.Context(), GetSubjectID(c), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return h.streamPDF(c, order)
}

// List returns all orders, optionally filtered by ?status=.
// GET /api/admin/orders
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалидни параметри"})
	}
	page.DefaultPage()

	status := entity.OrderStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалиден статус"})
	}

	orders, err := h.orderUC.List(c.Context(), status, page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(orders), "orders": toOrderResponses(orders)})
}

// GetByID returns one order with its items.
// GET /api/admin/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orderUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// UpdateStatus moves an order through the state machine.
// PUT /api/admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	order, err := h.orderUC.Transition(c.Context(), c.Params("id"), entity.OrderStatus(in.Status), b2b.TransitionInput{
		TrackingNumber: in.TrackingNumber,
		AdminNotes:     in.AdminNotes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toOrderResponse(order))
}

// DownloadPDF streams the printable confirmation of any order.
// GET /api/admin/orders/:id/pdf
func (h *OrderHandler) DownloadPDF(c *fiber.Ctx) error {
	order, err := h.orderUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return h.streamPDF(c, order)
}

func (h *OrderHandler) streamPDF(c *fiber.Ctx, order *entity.Order) error {
	company, err := h.companyUC.GetByID(c.Context(), order.CompanyID)
	if err != nil {
		// Historic orders outlive their company; render the buyer block
		// with a placeholder instead of failing the download.
		if !errors.Is(err, domain.ErrNotFound) {
			return writeDomainError(c, err)
		}
		company = &entity.Company{ID: order.CompanyID, CompanyName: "Изтрита фирма"}
	}
	payload, err := h.pdfGen.GenerateOrderPDF(c.Context(), order, company)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.pdf"`, order.OrderNumber))
	return c.Send(payload)
}

func toOrderResponse(order *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice.StringFixed(2),
			TotalPrice:  it.TotalPrice.StringFixed(2),
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CompanyID:       order.CompanyID,
		Status:          string(order.Status),
		Subtotal:        order.Subtotal.StringFixed(2),
		DiscountPercent: order.DiscountPercent.String(),
		DiscountAmount:  order.DiscountAmount.StringFixed(2),
		TotalAmount:     order.TotalAmount.StringFixed(2),
		Notes:           order.Notes,
		AdminNotes:      order.AdminNotes,
		TrackingNumber:  order.TrackingNumber,
		Items:           items,
		ConfirmedAt:     order.ConfirmedAt,
		ShippedAt:       order.ShippedAt,
		DeliveredAt:     order.DeliveredAt,
		CancelledAt:     order.CancelledAt,
		CreatedAt:       order.CreatedAt,
	}
}

func toOrderResponses(orders []entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return out
}
