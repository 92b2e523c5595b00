package ports

import (
	"context"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

// OrderPDFGenerator renders a printable order confirmation for a B2B
// order. The order must carry its items; the company supplies the
// buyer block of the document.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.Order, company *entity.Company) ([]byte, error)
}
