package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/internal/infrastructure/pdf"
)

func fixtureOrder() *entity.Order {
	return &entity.Order{
		ID:              "o-1",
		OrderNumber:     "B2B-20260830-AB12CD",
		CompanyID:       "c-1",
		Status:          entity.OrderConfirmed,
		Subtotal:        decimal.RequireFromString("100.00"),
		DiscountPercent: decimal.NewFromInt(15),
		DiscountAmount:  decimal.RequireFromString("15.00"),
		TotalAmount:     decimal.RequireFromString("85.00"),
		Notes:           "Доставка след 10:00 часа",
		Items: []entity.OrderItem{
			{
				ProductID:   "p-1",
				ProductName: "Роза храстовидна",
				Quantity:    3,
				UnitPrice:   decimal.RequireFromString("25.00"),
				TotalPrice:  decimal.RequireFromString("75.00"),
			},
			{
				ProductID:   "p-2",
				ProductName: "Лавандула теснолистна",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("12.50"),
				TotalPrice:  decimal.RequireFromString("25.00"),
			},
		},
		CreatedAt: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
}

func fixtureCompany() *entity.Company {
	tier := entity.TierGold
	return &entity.Company{
		ID:               "c-1",
		CompanyName:      "Градински рай ЕООД",
		EIK:              "204815623",
		MOL:              "Иван Петров",
		Email:            "office@gradinski-rai.bg",
		Phone:            "+359882123456",
		Status:           entity.CompanyApproved,
		Tier:             &tier,
		DiscountPercent:  decimal.NewFromInt(15),
		PaymentTermsDays: 30,
	}
}

// The document is almost entirely Cyrillic, which the built-in cp1252 core
// fonts cannot encode. The generator must embed a TrueType font instead of
// falling back to helvetica, otherwise every Bulgarian label renders blank.
func TestGenerateOrderPDF_EmbedsCyrillicCapableFont(t *testing.T) {
	g := pdf.NewMarotoOrderPDFGenerator("Градина БГ")

	payload, err := g.GenerateOrderPDF(context.Background(), fixtureOrder(), fixtureCompany())
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")), "output must be a PDF document")

	// An embedded TrueType font shows up as a FontFile2 entry in the font
	// descriptor; the core fonts never produce one.
	assert.True(t, bytes.Contains(payload, []byte("FontFile2")),
		"PDF must embed the bundled TrueType font")
	assert.False(t, bytes.Contains(payload, []byte("Helvetica")),
		"PDF must not reference the cp1252-only core font")
}

func TestGenerateOrderPDF_NoItemsStillRenders(t *testing.T) {
	g := pdf.NewMarotoOrderPDFGenerator("Градина БГ")

	order := fixtureOrder()
	order.Items = nil
	order.Notes = ""

	payload, err := g.GenerateOrderPDF(context.Background(), order, fixtureCompany())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte("%PDF")))
}
