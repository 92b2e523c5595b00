package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// MovementUseCase applies stock movements transactionally: row lock on the
// stock record (SELECT FOR UPDATE), quantity update and ledger append in
// one transaction, so concurrent movements on the same product serialize
// and no movement is lost or half-applied.
type MovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	logRepo     repository.StockLogRepository
}

// NewMovementUseCase constructs the use case. stockRepo/logRepo are the
// pool-bound repositories used for the read paths.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	logRepo repository.StockLogRepository,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		logRepo:     logRepo,
	}
}

// MovementInput is one requested stock movement. Quantity is a positive
// count; for adjustments it is the absolute target quantity.
type MovementInput struct {
	ProductID      string
	Type           entity.MovementType
	Quantity       int
	Reason         string
	Notes          string
	DocumentNumber string
	UnitPrice      *decimal.Decimal // incoming only
	CreatedBy      string
}

// MovementResult is the applied movement: the new on-hand quantity and the
// ledger entry that recorded it.
type MovementResult struct {
	NewQuantity int
	LogEntry    entity.StockLogEntry
}

// ApplyMovement validates and applies one movement. Outgoing/write-off
// beyond the current quantity fails with ErrInsufficientStock before any
// write. Exactly one ledger entry is appended per applied movement.
func (uc *MovementUseCase) ApplyMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !input.Type.Valid() || input.ProductID == "" {
		return nil, domain.ErrValidation
	}
	switch input.Type {
	case entity.MovementAdjustment:
		// Absolute target: zero is a legal count.
		if input.Quantity < 0 {
			return nil, domain.ErrValidation
		}
	default:
		if input.Quantity <= 0 {
			return nil, domain.ErrValidation
		}
	}
	if input.UnitPrice != nil && input.UnitPrice.IsNegative() {
		return nil, domain.ErrValidation
	}

	product, err := uc.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	var result *MovementResult

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		logRepo repository.StockLogRepository,
	) error {
		record, err := stockRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		previous := record.Quantity

		var newQuantity, logQuantity int
		switch input.Type {
		case entity.MovementIncoming:
			newQuantity = previous + input.Quantity
			logQuantity = input.Quantity
		case entity.MovementOutgoing, entity.MovementWriteOff:
			if input.Quantity > previous {
				return domain.ErrInsufficientStock
			}
			newQuantity = previous - input.Quantity
			if newQuantity < 0 {
				newQuantity = 0
			}
			logQuantity = input.Quantity
		case entity.MovementAdjustment:
			// Caller supplies the target count; the ledger records the
			// magnitude of the computed delta.
			newQuantity = input.Quantity
			delta := newQuantity - previous
			if delta < 0 {
				delta = -delta
			}
			logQuantity = delta
		}

		record.Quantity = newQuantity
		record.UpdatedAt = now
		if err := stockRepo.Upsert(record); err != nil {
			return err
		}

		entry := entity.StockLogEntry{
			ID:               uuid.New().String(),
			ProductID:        input.ProductID,
			Type:             input.Type,
			Quantity:         logQuantity,
			PreviousQuantity: previous,
			NewQuantity:      newQuantity,
			Reason:           input.Reason,
			Notes:            input.Notes,
			DocumentNumber:   input.DocumentNumber,
			CreatedAt:        now,
			CreatedBy:        input.CreatedBy,
		}
		if input.Type == entity.MovementIncoming && input.UnitPrice != nil {
			unit := *input.UnitPrice
			total := unit.Mul(decimal.NewFromInt(int64(logQuantity)))
			entry.UnitPrice = &unit
			entry.TotalPrice = &total
		}
		if err := logRepo.Append(&entry); err != nil {
			return err
		}

		result = &MovementResult{NewQuantity: newQuantity, LogEntry: entry}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ListLow returns every stock record at or below its reorder threshold.
// Pure query, no mutation.
func (uc *MovementUseCase) ListLow(ctx context.Context) ([]entity.StockRecord, error) {
	return uc.stockRepo.ListLow()
}

// History lists ledger entries, optionally filtered by product and
// movement type.
func (uc *MovementUseCase) History(ctx context.Context, productID string, movementType entity.MovementType, limit, offset int) ([]entity.StockLogEntry, error) {
	if movementType != "" && !movementType.Valid() {
		return nil, domain.ErrValidation
	}
	return uc.logRepo.History(productID, movementType, limit, offset)
}

// Get returns the current stock record of one product.
func (uc *MovementUseCase) Get(ctx context.Context, productID string) (*entity.StockRecord, error) {
	record, err := uc.stockRepo.Get(productID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return record, nil
}
