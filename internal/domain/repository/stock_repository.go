package repository

import "github.com/stoyanovb/gradina-api/internal/domain/entity"

// StockRepository is the persistence port for stock records.
type StockRepository interface {
	Get(productID string) (*entity.StockRecord, error)
	// GetForUpdate reads the record under a row lock (SELECT ... FOR UPDATE)
	// so concurrent movements against the same product serialize. Only
	// meaningful inside a transaction.
	GetForUpdate(productID string) (*entity.StockRecord, error)
	Upsert(s *entity.StockRecord) error
	// ListLow returns records with quantity <= min_quantity.
	ListLow() ([]entity.StockRecord, error)
}

// StockLogRepository is the append-only ledger port. Entries are never
// updated or deleted.
type StockLogRepository interface {
	Append(e *entity.StockLogEntry) error
	// History lists entries newest first; productID and movementType are
	// optional filters (empty = all).
	History(productID string, movementType entity.MovementType, limit, offset int) ([]entity.StockLogEntry, error)
}
