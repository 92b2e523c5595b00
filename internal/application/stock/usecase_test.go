package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanovb/gradina-api/internal/application/stock"
	"github.com/stoyanovb/gradina-api/internal/domain"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// In-memory fakes
// ─────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	records map[string]*entity.StockRecord
}

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{records: map[string]*entity.StockRecord{}}
}

func (r *memStockRepo) Get(productID string) (*entity.StockRecord, error) {
	if s, ok := r.records[productID]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *memStockRepo) GetForUpdate(productID string) (*entity.StockRecord, error) {
	if s, ok := r.records[productID]; ok {
		cp := *s
		return &cp, nil
	}
	return &entity.StockRecord{ProductID: productID}, nil
}

func (r *memStockRepo) Upsert(s *entity.StockRecord) error {
	cp := *s
	r.records[s.ProductID] = &cp
	return nil
}

func (r *memStockRepo) ListLow() ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for _, s := range r.records {
		if s.IsLow() {
			out = append(out, *s)
		}
	}
	return out, nil
}

type memLogRepo struct {
	entries []entity.StockLogEntry
}

func (r *memLogRepo) Append(e *entity.StockLogEntry) error {
	r.entries = append(r.entries, *e)
	return nil
}

func (r *memLogRepo) History(productID string, movementType entity.MovementType, limit, offset int) ([]entity.StockLogEntry, error) {
	var out []entity.StockLogEntry
	for _, e := range r.entries {
		if productID != "" && e.ProductID != productID {
			continue
		}
		if movementType != "" && e.Type != movementType {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetBySKU(sku string) (*entity.Product, error) { return nil, nil }
func (r *memProductRepo) List(b2bOnly bool, limit, offset int) ([]entity.Product, error) {
	return nil, nil
}
func (r *memProductRepo) Delete(id string) error { return nil }

// memTxRunner hands the shared fakes to fn; a failed fn leaves the repos
// untouched because the use case only writes after its checks pass.
type memTxRunner struct {
	stockRepo *memStockRepo
	logRepo   *memLogRepo
}

func (t *memTxRunner) Run(ctx context.Context, fn func(repository.StockRepository, repository.StockLogRepository) error) error {
	return fn(t.stockRepo, t.logRepo)
}

const productID = "11111111-1111-1111-1111-111111111111"

func newFixture(t *testing.T, quantity, minQuantity int) (*stock.MovementUseCase, *memStockRepo, *memLogRepo) {
	t.Helper()
	stockRepo := newMemStockRepo()
	logRepo := &memLogRepo{}
	productRepo := &memProductRepo{products: map[string]*entity.Product{
		productID: {ID: productID, SKU: "ROSE-01", Name: "Роза храстовидна", Active: true},
	}}
	require.NoError(t, stockRepo.Upsert(&entity.StockRecord{
		ProductID:   productID,
		Quantity:    quantity,
		MinQuantity: minQuantity,
		UpdatedAt:   time.Now(),
	}))
	runner := &memTxRunner{stockRepo: stockRepo, logRepo: logRepo}
	uc := stock.NewMovementUseCase(runner, productRepo, stockRepo, logRepo)
	return uc, stockRepo, logRepo
}

// ─────────────────────────────────────────────────────────────────────────────
// Movements
// ─────────────────────────────────────────────────────────────────────────────

// Incoming 20 on a record of 50 lands on 70 with a matching ledger entry.
func TestApplyMovement_Incoming(t *testing.T) {
	uc, stockRepo, logRepo := newFixture(t, 50, 10)

	unitPrice := decimal.RequireFromString("3.20")
	res, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID:      productID,
		Type:           entity.MovementIncoming,
		Quantity:       20,
		DocumentNumber: "DOC-2024-117",
		UnitPrice:      &unitPrice,
	})
	require.NoError(t, err)
	assert.Equal(t, 70, res.NewQuantity)
	assert.Equal(t, 50, res.LogEntry.PreviousQuantity)
	assert.Equal(t, 70, res.LogEntry.NewQuantity)
	assert.Equal(t, entity.MovementIncoming, res.LogEntry.Type)
	require.NotNil(t, res.LogEntry.TotalPrice)
	assert.True(t, res.LogEntry.TotalPrice.Equal(decimal.RequireFromString("64.00")))

	record, err := stockRepo.Get(productID)
	require.NoError(t, err)
	assert.Equal(t, 70, record.Quantity)
	assert.Len(t, logRepo.entries, 1)
}

// Outgoing beyond the current quantity is rejected entirely: quantity
// unchanged, no ledger entry.
func TestApplyMovement_OutgoingInsufficientStock(t *testing.T) {
	uc, stockRepo, logRepo := newFixture(t, 50, 10)

	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID,
		Type:      entity.MovementOutgoing,
		Quantity:  80,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	record, err := stockRepo.Get(productID)
	require.NoError(t, err)
	assert.Equal(t, 50, record.Quantity)
	assert.Empty(t, logRepo.entries)
}

func TestApplyMovement_OutgoingAndWriteOff(t *testing.T) {
	uc, stockRepo, _ := newFixture(t, 50, 10)

	res, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID, Type: entity.MovementOutgoing, Quantity: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, res.NewQuantity)

	res, err = uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID, Type: entity.MovementWriteOff, Quantity: 20, Reason: "измръзнали растения",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity)

	// Nothing left: the next write-off must fail.
	_, err = uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID, Type: entity.MovementWriteOff, Quantity: 1,
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	record, _ := stockRepo.Get(productID)
	assert.Equal(t, 0, record.Quantity)
}

// Adjustment takes an absolute target; the ledger records the delta
// magnitude with consistent before/after quantities.
func TestApplyMovement_Adjustment(t *testing.T) {
	uc, stockRepo, logRepo := newFixture(t, 50, 10)

	res, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID,
		Type:      entity.MovementAdjustment,
		Quantity:  42,
		Reason:    "годишна инвентаризация",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, res.NewQuantity)
	assert.Equal(t, 8, res.LogEntry.Quantity) // |42 - 50|
	assert.Equal(t, 50, res.LogEntry.PreviousQuantity)
	assert.Equal(t, 42, res.LogEntry.NewQuantity)

	// Adjusting to zero is legal.
	res, err = uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: productID, Type: entity.MovementAdjustment, Quantity: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity)
	assert.Len(t, logRepo.entries, 2)

	record, _ := stockRepo.Get(productID)
	assert.Equal(t, 0, record.Quantity)
}

func TestApplyMovement_Validation(t *testing.T) {
	uc, _, logRepo := newFixture(t, 50, 10)
	ctx := context.Background()

	cases := []struct {
		name  string
		input stock.MovementInput
	}{
		{"unknown type", stock.MovementInput{ProductID: productID, Type: "transfer", Quantity: 5}},
		{"zero quantity", stock.MovementInput{ProductID: productID, Type: entity.MovementIncoming, Quantity: 0}},
		{"negative quantity", stock.MovementInput{ProductID: productID, Type: entity.MovementOutgoing, Quantity: -3}},
		{"negative adjustment target", stock.MovementInput{ProductID: productID, Type: entity.MovementAdjustment, Quantity: -1}},
		{"missing product id", stock.MovementInput{Type: entity.MovementIncoming, Quantity: 5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.ApplyMovement(ctx, tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
	assert.Empty(t, logRepo.entries, "rejected movements must not write ledger entries")
}

func TestApplyMovement_UnknownProduct(t *testing.T) {
	uc, _, _ := newFixture(t, 50, 10)
	_, err := uc.ApplyMovement(context.Background(), stock.MovementInput{
		ProductID: "22222222-2222-2222-2222-222222222222",
		Type:      entity.MovementIncoming,
		Quantity:  5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// For any applied sequence the quantity stays non-negative and every
// ledger entry's delta matches its type.
func TestApplyMovement_LedgerConsistency(t *testing.T) {
	uc, stockRepo, logRepo := newFixture(t, 0, 5)
	ctx := context.Background()

	steps := []stock.MovementInput{
		{ProductID: productID, Type: entity.MovementIncoming, Quantity: 100},
		{ProductID: productID, Type: entity.MovementOutgoing, Quantity: 37},
		{ProductID: productID, Type: entity.MovementWriteOff, Quantity: 3},
		{ProductID: productID, Type: entity.MovementAdjustment, Quantity: 55},
		{ProductID: productID, Type: entity.MovementOutgoing, Quantity: 55},
		{ProductID: productID, Type: entity.MovementOutgoing, Quantity: 1}, // rejected
		{ProductID: productID, Type: entity.MovementIncoming, Quantity: 10},
	}
	for _, s := range steps {
		_, err := uc.ApplyMovement(ctx, s)
		if err != nil {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
		}
		record, _ := stockRepo.Get(productID)
		assert.GreaterOrEqual(t, record.Quantity, 0)
	}

	for _, e := range logRepo.entries {
		delta := e.NewQuantity - e.PreviousQuantity
		switch e.Type {
		case entity.MovementIncoming:
			assert.Equal(t, e.Quantity, delta)
		case entity.MovementOutgoing, entity.MovementWriteOff:
			assert.Equal(t, -e.Quantity, delta)
		case entity.MovementAdjustment:
			if delta < 0 {
				delta = -delta
			}
			assert.Equal(t, e.Quantity, delta)
		}
		assert.GreaterOrEqual(t, e.NewQuantity, 0)
	}
	record, _ := stockRepo.Get(productID)
	assert.Equal(t, 10, record.Quantity)
}

// ─────────────────────────────────────────────────────────────────────────────
// Read paths
// ─────────────────────────────────────────────────────────────────────────────

func TestListLow(t *testing.T) {
	uc, stockRepo, _ := newFixture(t, 50, 10)
	require.NoError(t, stockRepo.Upsert(&entity.StockRecord{ProductID: "p2", Quantity: 3, MinQuantity: 5}))
	require.NoError(t, stockRepo.Upsert(&entity.StockRecord{ProductID: "p3", Quantity: 5, MinQuantity: 5}))

	low, err := uc.ListLow(context.Background())
	require.NoError(t, err)

	ids := make([]string, 0, len(low))
	for _, s := range low {
		ids = append(ids, s.ProductID)
	}
	assert.ElementsMatch(t, []string{"p2", "p3"}, ids, "quantity == min counts as low")
}

func TestHistory_Filters(t *testing.T) {
	uc, _, _ := newFixture(t, 50, 10)
	ctx := context.Background()

	_, err := uc.ApplyMovement(ctx, stock.MovementInput{ProductID: productID, Type: entity.MovementIncoming, Quantity: 5})
	require.NoError(t, err)
	_, err = uc.ApplyMovement(ctx, stock.MovementInput{ProductID: productID, Type: entity.MovementOutgoing, Quantity: 2})
	require.NoError(t, err)

	all, err := uc.History(ctx, productID, "", 50, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	outgoing, err := uc.History(ctx, "", entity.MovementOutgoing, 50, 0)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, entity.MovementOutgoing, outgoing[0].Type)

	_, err = uc.History(ctx, productID, "bogus", 50, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
