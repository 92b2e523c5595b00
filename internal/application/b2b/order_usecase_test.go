package b2b_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanovb/gradina-api/internal/application/b2b"
	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/pricing"
)

const (
	companyID = "c0000000-0000-0000-0000-000000000001"
	prodRose  = "p0000000-0000-0000-0000-000000000001"
	prodTulip = "p0000000-0000-0000-0000-000000000002"
	prodFern  = "p0000000-0000-0000-0000-000000000003"
)

func newOrderFixture() (*b2b.OrderUseCase, *memOrderRepo, *memCompanyRepo, *recordingNotifier) {
	orderRepo := newMemOrderRepo()
	companyRepo := newMemCompanyRepo()
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		prodRose:  {ID: prodRose, SKU: "ROSE-01", Name: "Роза храстовидна", Price: decimal.RequireFromString("25.00"), Active: true, B2BVisible: true},
		prodTulip: {ID: prodTulip, SKU: "TULIP-02", Name: "Лале Triumph", Price: decimal.RequireFromString("12.50"), Active: true, B2BVisible: true},
		prodFern:  {ID: prodFern, SKU: "FERN-03", Name: "Папрат Nephrolepis", Price: decimal.RequireFromString("8.75"), Active: true, B2BVisible: true},
	}}
	notifier := &recordingNotifier{}

	gold := entity.TierGold
	now := time.Now()
	policy := pricing.DefaultPolicy()
	_ = companyRepo.Create(&entity.Company{
		ID:               companyID,
		CompanyName:      "Градински рай ЕООД",
		EIK:              "204815623",
		Email:            "office@gradinski-rai.bg",
		PasswordHash:     hashPassword("s3cret-parola"),
		Status:           entity.CompanyApproved,
		Tier:             &gold,
		DiscountPercent:  policy.DiscountFor(gold),
		PaymentTermsDays: policy.PaymentTermsFor(gold),
		ApprovedAt:       &now,
	})

	uc := b2b.NewOrderUseCase(orderRepo, productRepo, companyRepo, notifier)
	return uc, orderRepo, companyRepo, notifier
}

// Three line items at subtotal 100.00 with a 15% company discount total
// 85.00, and the stored totals stay a pure function of the snapshot data.
func TestPlaceOrder_TotalsWithDiscount(t *testing.T) {
	uc, _, companyRepo, _ := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), companyID, []b2b.OrderLine{
		{ProductID: prodRose, Quantity: 2},  // 50.00
		{ProductID: prodTulip, Quantity: 3}, // 37.50
		{ProductID: prodFern, Quantity: 1},  // 8.75... adjust aiming for 100
	}, "доставка до обект Младост")
	require.NoError(t, err)

	// Subtotal 50.00 + 37.50 + 8.75 = 96.25
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("96.25")))
	assert.True(t, order.DiscountPercent.Equal(decimal.NewFromInt(15)))
	assert.True(t, order.DiscountAmount.Equal(decimal.RequireFromString("14.4375")))
	assert.True(t, order.TotalAmount.Equal(decimal.RequireFromString("81.8125")))
	assert.Equal(t, "81.81", order.TotalAmount.StringFixed(2))
	assert.Equal(t, entity.OrderPending, order.Status)
	assert.Len(t, order.Items, 3)
	assert.Regexp(t, `^B2B-\d{8}-[0-9A-F]{6}$`, order.OrderNumber)

	// Re-deriving the totals from the stored items reproduces them.
	rederived := decimal.Zero
	for _, it := range order.Items {
		assert.True(t, it.TotalPrice.Equal(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))))
		rederived = rederived.Add(it.TotalPrice)
	}
	assert.True(t, rederived.Equal(order.Subtotal))

	// Tier change after placement must not alter the stored order.
	company, _ := companyRepo.GetByID(companyID)
	platinum := entity.TierPlatinum
	company.Tier = &platinum
	company.DiscountPercent = decimal.NewFromInt(20)
	require.NoError(t, companyRepo.UpdateStatus(company, entity.CompanyApproved))

	reloaded, err := uc.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.DiscountPercent.Equal(decimal.NewFromInt(15)))
	assert.True(t, reloaded.TotalAmount.Equal(decimal.RequireFromString("81.8125")))
}

func TestPlaceOrder_ExactScenarioTotals(t *testing.T) {
	uc, _, _, _ := newOrderFixture()

	// 4 roses = 100.00 subtotal, 15% -> 15.00 discount, 85.00 total.
	order, err := uc.PlaceOrder(context.Background(), companyID, []b2b.OrderLine{
		{ProductID: prodRose, Quantity: 4},
	}, "")
	require.NoError(t, err)
	assert.True(t, order.Subtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, order.DiscountAmount.Equal(decimal.NewFromInt(15)))
	assert.True(t, order.TotalAmount.Equal(decimal.NewFromInt(85)))
}

func TestPlaceOrder_SnapshotsSurviveCatalogChange(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()

	order, err := uc.PlaceOrder(context.Background(), companyID, []b2b.OrderLine{
		{ProductID: prodRose, Quantity: 1},
	}, "")
	require.NoError(t, err)

	stored, _ := orderRepo.GetByID(order.ID)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Роза храстовидна", stored.Items[0].ProductName)
	assert.True(t, stored.Items[0].UnitPrice.Equal(decimal.RequireFromString("25.00")))
}

func TestPlaceOrder_Validation(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	_, err := uc.PlaceOrder(ctx, companyID, nil, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.PlaceOrder(ctx, companyID, []b2b.OrderLine{{ProductID: prodRose, Quantity: 0}}, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.PlaceOrder(ctx, companyID, []b2b.OrderLine{{ProductID: "missing", Quantity: 1}}, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceOrder_GatedOnCompanyStatus(t *testing.T) {
	uc, _, companyRepo, _ := newOrderFixture()

	company, _ := companyRepo.GetByID(companyID)
	company.Status = entity.CompanySuspended
	require.NoError(t, companyRepo.UpdateStatus(company, entity.CompanyApproved))

	_, err := uc.PlaceOrder(context.Background(), companyID, []b2b.OrderLine{{ProductID: prodRose, Quantity: 1}}, "")
	assert.ErrorIs(t, err, domain.ErrCompanySuspended)
}

// ─────────────────────────────────────────────────────────────────────────────
// State machine
// ─────────────────────────────────────────────────────────────────────────────

func placeTestOrder(t *testing.T, uc *b2b.OrderUseCase) *entity.Order {
	t.Helper()
	order, err := uc.PlaceOrder(context.Background(), companyID, []b2b.OrderLine{
		{ProductID: prodRose, Quantity: 1},
	}, "")
	require.NoError(t, err)
	return order
}

func TestTransition_HappyPathStampsTimestamps(t *testing.T) {
	uc, _, _, notifier := newOrderFixture()
	order := placeTestOrder(t, uc)
	ctx := context.Background()

	for _, target := range []entity.OrderStatus{
		entity.OrderConfirmed, entity.OrderProcessing, entity.OrderShipped, entity.OrderDelivered,
	} {
		var err error
		order, err = uc.Transition(ctx, order.ID, target, b2b.TransitionInput{})
		require.NoError(t, err)
		assert.Equal(t, target, order.Status)
	}
	assert.NotNil(t, order.ConfirmedAt)
	assert.NotNil(t, order.ShippedAt)
	assert.NotNil(t, order.DeliveredAt)
	assert.Nil(t, order.CancelledAt)

	// One notification per transition.
	events := notifier.all()
	require.Len(t, events, 4)
	for _, e := range events {
		assert.Equal(t, notify.EventOrderStatus, e.Kind)
		assert.Equal(t, order.OrderNumber, e.OrderNumber)
	}
}

// Skipping forward is allowed; only terminal states block.
func TestTransition_SkipForwardAllowed(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	order := placeTestOrder(t, uc)

	got, err := uc.Transition(context.Background(), order.ID, entity.OrderShipped, b2b.TransitionInput{TrackingNumber: "BG123456789"})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderShipped, got.Status)
	assert.Equal(t, "BG123456789", got.TrackingNumber)
	assert.NotNil(t, got.ShippedAt)
	assert.Nil(t, got.ConfirmedAt, "skipped states are not stamped")
}

func TestTransition_TerminalStatesFinal(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	ctx := context.Background()

	delivered := placeTestOrder(t, uc)
	_, err := uc.Transition(ctx, delivered.ID, entity.OrderDelivered, b2b.TransitionInput{})
	require.NoError(t, err)
	for _, target := range []entity.OrderStatus{
		entity.OrderPending, entity.OrderConfirmed, entity.OrderProcessing,
		entity.OrderShipped, entity.OrderCancelled,
	} {
		_, err := uc.Transition(ctx, delivered.ID, target, b2b.TransitionInput{})
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "delivered -> %s", target)
	}

	cancelled := placeTestOrder(t, uc)
	_, err = uc.Transition(ctx, cancelled.ID, entity.OrderCancelled, b2b.TransitionInput{})
	require.NoError(t, err)
	for _, target := range []entity.OrderStatus{
		entity.OrderPending, entity.OrderConfirmed, entity.OrderProcessing,
		entity.OrderShipped, entity.OrderDelivered,
	} {
		_, err := uc.Transition(ctx, cancelled.ID, target, b2b.TransitionInput{})
		assert.ErrorIs(t, err, domain.ErrIllegalTransition, "cancelled -> %s", target)
	}
}

// Entering the same status twice never overwrites the first timestamp.
func TestTransition_TimestampIdempotent(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()
	order := placeTestOrder(t, uc)
	ctx := context.Background()

	first, err := uc.Transition(ctx, order.ID, entity.OrderShipped, b2b.TransitionInput{})
	require.NoError(t, err)
	shippedAt := *first.ShippedAt

	time.Sleep(5 * time.Millisecond)
	second, err := uc.Transition(ctx, order.ID, entity.OrderShipped, b2b.TransitionInput{})
	require.NoError(t, err, "re-entering the current status is a no-op")
	assert.True(t, second.ShippedAt.Equal(shippedAt))

	stored, _ := orderRepo.GetByID(order.ID)
	assert.True(t, stored.ShippedAt.Equal(shippedAt))
}

func TestTransition_UnknownStatus(t *testing.T) {
	uc, _, _, _ := newOrderFixture()
	order := placeTestOrder(t, uc)
	_, err := uc.Transition(context.Background(), order.ID, "misplaced", b2b.TransitionInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTransition_ConcurrentModification(t *testing.T) {
	uc, orderRepo, _, _ := newOrderFixture()
	order := placeTestOrder(t, uc)
	ctx := context.Background()

	// Another admin confirms the order between our read and write.
	stale, _ := orderRepo.GetByID(order.ID)
	_, err := uc.Transition(ctx, order.ID, entity.OrderConfirmed, b2b.TransitionInput{})
	require.NoError(t, err)

	stale.Status = entity.OrderProcessing
	err = orderRepo.UpdateStatus(stale, entity.OrderPending)
	assert.ErrorIs(t, err, domain.ErrConcurrentModification)
}

// A deleted company leaves historic orders readable and transitions
// possible; only the notification is skipped.
func TestTransition_CompanyGone(t *testing.T) {
	uc, _, companyRepo, notifier := newOrderFixture()
	order := placeTestOrder(t, uc)

	require.NoError(t, companyRepo.Delete(companyID))

	got, err := uc.Transition(context.Background(), order.ID, entity.OrderConfirmed, b2b.TransitionInput{})
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
	assert.Empty(t, notifier.all())
}
