package stock

import (
	"context"

	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction, handing it
// repositories bound to that transaction. The stock record update and the
// ledger append must commit or roll back together.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
