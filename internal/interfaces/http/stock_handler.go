package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/stoyanovb/gradina-api/internal/application/dto"
	"github.com/stoyanovb/gradina-api/internal/application/stock"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// StockHandler serves the warehouse surface: movements, current stock,
// the low-stock report and the ledger history.
type StockHandler struct {
	uc *stock.MovementUseCase
}

// NewStockHandler builds the handler.
func NewStockHandler(uc *stock.MovementUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ApplyMovement applies one stock movement and returns the ledger entry.
// POST /api/admin/stock/movements
func (h *StockHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Невалидно тяло на заявката"})
	}
	result, err := h.uc.ApplyMovement(c.Context(), stock.MovementInput{
		ProductID:      in.ProductID,
		Type:           entity.MovementType(in.Type),
		Quantity:       in.Quantity,
		Reason:         in.Reason,
		Notes:          in.Notes,
		DocumentNumber: in.DocumentNumber,
		UnitPrice:      in.UnitPrice,
		CreatedBy:      GetSubjectID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		ProductID:   in.ProductID,
		NewQuantity: result.NewQuantity,
		LogEntry:    toStockLogDTO(result.LogEntry),
	})
}

// Get returns the current stock of one product.
// GET /api/admin/stock/:productId
func (h *StockHandler) Get(c *fiber.Ctx) error {
	record, err := h.uc.Get(c.Context(), c.Params("productId"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(toStockRecordDTO(record))
}

// ListLow returns the products at or below their minimum quantity.
// GET /api/admin/stock/low
func (h *StockHandler) ListLow(c *fiber.Ctx) error {
	records, err := h.uc.ListLow(c.Context())
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.StockRecordDTO, 0, len(records))
	for i := range records {
		out = append(out, toStockRecordDTO(&records[i]))
	}
	return c.JSON(fiber.Map{"total": len(out), "stock": out})
}

// History returns the ledger of one product, newest first, optionally
// filtered by ?type=.
// GET /api/admin/stock/:productId/history
func (h *StockHandler) History(c *fiber.Ctx) error {
	return h.history(c, c.Params("productId"))
}

// HistoryAll returns the ledger across all products, newest first,
// optionally filtered by ?product_id= and ?type=.
// GET /api/admin/stock/history
func (h *StockHandler) HistoryAll(c *fiber.Ctx) error {
	return h.history(c, c.Query("product_id"))
}

func (h *StockHandler) history(c *fiber.Ctx, productID string) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Невалидни параметри"})
	}
	page.DefaultPage()

	entries, err := h.uc.History(c.Context(), productID, entity.MovementType(c.Query("type")), page.Limit, page.Offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	out := make([]dto.StockLogDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toStockLogDTO(e))
	}
	return c.JSON(fiber.Map{"total": len(out), "history": out})
}

func toStockRecordDTO(record *entity.StockRecord) dto.StockRecordDTO {
	return dto.StockRecordDTO{
		ProductID:   record.ProductID,
		Quantity:    record.Quantity,
		MinQuantity: record.MinQuantity,
		Location:    record.Location,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toStockLogDTO(e entity.StockLogEntry) dto.StockLogDTO {
	return dto.StockLogDTO{
		ID:               e.ID,
		ProductID:        e.ProductID,
		Type:             string(e.Type),
		Quantity:         e.Quantity,
		PreviousQuantity: e.PreviousQuantity,
		NewQuantity:      e.NewQuantity,
		Reason:           e.Reason,
		Notes:            e.Notes,
		DocumentNumber:   e.DocumentNumber,
		UnitPrice:        e.UnitPrice,
		TotalPrice:       e.TotalPrice,
		CreatedAt:        e.CreatedAt,
		CreatedBy:        e.CreatedBy,
	}
}
