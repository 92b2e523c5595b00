package b2b

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// OrderUseCase is the B2B order pipeline: placement with price/name
// snapshots and the status state machine with notification side effects.
type OrderUseCase struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	companyRepo repository.CompanyRepository
	notifier    Notifier
}

// NewOrderUseCase constructs the use case.
func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
	notifier Notifier,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
	}
}

// OrderLine is one requested item of a checkout.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// PlaceOrder submits a cart for an approved company. Product names and
// unit prices are snapshotted into the line items and the company's
// current discount percent is copied onto the order; later catalog or
// tier changes never touch a placed order.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, companyID string, lines []OrderLine, notes string) (*entity.Order, error) {
	if len(lines) == 0 {
		return nil, domain.ErrValidation
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	switch company.Status {
	case entity.CompanyApproved:
	case entity.CompanyPending:
		return nil, domain.ErrCompanyPending
	case entity.CompanyRejected:
		return nil, domain.ErrCompanyRejected
	case entity.CompanySuspended:
		return nil, domain.ErrCompanySuspended
	default:
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	orderID := uuid.New().String()
	subtotal := decimal.Zero
	items := make([]entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.ErrValidation
		}
		product, err := uc.productRepo.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.Active || !product.B2BVisible {
			return nil, domain.ErrNotFound
		}
		unitPrice := product.Price
		total := unitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  total,
		})
		subtotal = subtotal.Add(total)
	}

	discountPercent := company.DiscountPercent
	discountAmount := pricing.DiscountAmount(subtotal, discountPercent)
	order := &entity.Order{
		ID:              orderID,
		OrderNumber:     newOrderNumber(now),
		CompanyID:       companyID,
		Status:          entity.OrderPending,
		Subtotal:        subtotal,
		DiscountPercent: discountPercent,
		DiscountAmount:  discountAmount,
		TotalAmount:     subtotal.Sub(discountAmount),
		Notes:           notes,
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.orderRepo.Create(order); err != nil {
		return nil, err
	}
	return order, nil
}

// TransitionInput carries the optional fields an admin sets alongside a
// status change.
type TransitionInput struct {
	TrackingNumber string
	AdminNotes     string
}

// Transition moves an order to the target status. Only terminality is
// enforced: skipping forward is allowed, delivered and cancelled are
// final. The matching timestamp is stamped the first time a status is
// entered and never overwritten. A re-entry of the current status is a
// no-op. On success a status notification is enqueued fire-and-forget.
func (uc *OrderUseCase) Transition(ctx context.Context, orderID string, target entity.OrderStatus, in TransitionInput) (*entity.Order, error) {
	if !target.Valid() {
		return nil, domain.ErrValidation
	}
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	previous := order.Status
	if previous == target {
		return order, nil
	}
	if !previous.CanTransitionTo(target) {
		return nil, domain.ErrIllegalTransition
	}

	now := time.Now()
	order.Status = target
	stampOnce := func(ts **time.Time) {
		if *ts == nil {
			*ts = &now
		}
	}
	switch target {
	case entity.OrderConfirmed:
		stampOnce(&order.ConfirmedAt)
	case entity.OrderShipped:
		stampOnce(&order.ShippedAt)
	case entity.OrderDelivered:
		stampOnce(&order.DeliveredAt)
	case entity.OrderCancelled:
		stampOnce(&order.CancelledAt)
	}
	if in.TrackingNumber != "" {
		order.TrackingNumber = in.TrackingNumber
	}
	if in.AdminNotes != "" {
		order.AdminNotes = in.AdminNotes
	}
	order.UpdatedAt = now

	if err := uc.orderRepo.UpdateStatus(order, previous); err != nil {
		return nil, err
	}

	// The company may be gone for historic orders; then there is nobody
	// to notify and the transition still stands.
	if company, err := uc.companyRepo.GetByID(order.CompanyID); err == nil && company != nil {
		uc.notifier.Enqueue(notify.Event{
			Kind:        notify.EventOrderStatus,
			Recipient:   company.Email,
			CompanyName: company.CompanyName,
			OrderNumber: order.OrderNumber,
			OrderStatus: target,
		})
	}
	return order, nil
}

// GetByID loads one order with its items.
func (uc *OrderUseCase) GetByID(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// GetOwn loads an order and verifies it belongs to the company.
func (uc *OrderUseCase) GetOwn(ctx context.Context, companyID, orderID string) (*entity.Order, error) {
	order, err := uc.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListByCompany returns a partner's own orders, newest first.
func (uc *OrderUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]entity.Order, error) {
	return uc.orderRepo.ListByCompany(companyID, limit, offset)
}

// List returns orders for the back office, optionally filtered by status.
func (uc *OrderUseCase) List(ctx context.Context, status entity.OrderStatus, limit, offset int) ([]entity.Order, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrValidation
	}
	return uc.orderRepo.List(status, limit, offset)
}

// newOrderNumber builds a display identifier like B2B-20260830-7F3A2C.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("B2B-%s-%s", now.Format("20060102"), suffix)
}
