// Package pdf renders the printable B2B order confirmation.
//
// A4 layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: store name         │  N° на поръчка + дата          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  КЛИЕНТ: фирма, ЕИК, МОЛ, контакти                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ТАБЛИЦА: Кол. | Продукт | Ед. цена | Сума                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ТОТАЛИ: Междинна сума / Отстъпка / ОБЩО                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	_ "embed"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	coreentity "github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/stoyanovb/gradina-api/internal/application/ports"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
)

var _ ports.OrderPDFGenerator = (*MarotoOrderPDFGenerator)(nil)

// The built-in PDF core fonts are cp1252-only and silently drop Cyrillic
// runes, so the document embeds DejaVu Sans.
const fontFamily = "dejavu"

//go:embed fonts/DejaVuSans.ttf
var dejaVuSansRegular []byte

//go:embed fonts/DejaVuSans-Bold.ttf
var dejaVuSansBold []byte

var (
	colorPrimary = &props.Color{Red: 34, Green: 102, Blue: 51}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// MarotoOrderPDFGenerator renders order confirmations with Maroto v2.
type MarotoOrderPDFGenerator struct {
	storeName string
}

// NewMarotoOrderPDFGenerator builds the generator. storeName appears in
// the document header and metadata.
func NewMarotoOrderPDFGenerator(storeName string) *MarotoOrderPDFGenerator {
	return &MarotoOrderPDFGenerator{storeName: storeName}
}

// GenerateOrderPDF renders the order and returns the PDF bytes.
func (g *MarotoOrderPDFGenerator) GenerateOrderPDF(
	_ context.Context,
	order *entity.Order,
	company *entity.Company,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithCustomFonts([]*coreentity.CustomFont{
			{Family: fontFamily, Style: fontstyle.Normal, Bytes: dejaVuSansRegular},
			{Family: fontFamily, Style: fontstyle.Bold, Bytes: dejaVuSansBold},
		}).
		WithDefaultFont(&props.Font{Family: fontFamily, Size: 9}).
		WithTitle("Потвърждение на поръчка "+order.OrderNumber, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(order))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(buyerRow(company))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range itemRows(order.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(order))

	if order.Notes != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(notesRow(order.Notes))
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(company))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoOrderPDFGenerator) headerRow(order *entity.Order) core.Row {
	date := order.CreatedAt.Format("02.01.2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Поръчка на едро", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("ПОТВЪРЖДЕНИЕ НА ПОРЪЧКА", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(order.OrderNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Дата: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// buyerRow: the ordering company block.
func buyerRow(company *entity.Company) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("КЛИЕНТ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(company.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("ЕИК: %s   |   МОЛ: %s   |   Email: %s   |   Тел: %s",
				company.EIK,
				nonEmpty(company.MOL, "—"),
				nonEmpty(company.Email, "—"),
				nonEmpty(company.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Кол.", 1, align.Center),
		h("Продукт", 6, align.Left),
		h("Ед. цена", 2, align.Right),
		h("Сума", 3, align.Right),
	)
}

// itemRows: one row per order line. Names and prices are the snapshots
// taken at placement.
func itemRows(items []entity.OrderItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.UnitPrice.StringFixed(2)+" лв.",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				it.TotalPrice.StringFixed(2)+" лв.",
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(order *entity.Order) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	discountLabel := fmt.Sprintf("Отстъпка (%s%%):", order.DiscountPercent.StringFixed(0))

	return row.New(26).Add(
		col.New(4),
		col.New(4).Add(
			label("Междинна сума:"),
			label(discountLabel),
			grandLabel("ОБЩО ЗА ПЛАЩАНЕ:"),
		),
		col.New(4).Add(
			value(order.Subtotal.StringFixed(2)+" лв."),
			value("-"+order.DiscountAmount.StringFixed(2)+" лв."),
			grandValue(order.TotalAmount.StringFixed(2)+" лв."),
		),
	)
}

func notesRow(notes string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("БЕЛЕЖКИ КЪМ ПОРЪЧКАТА", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(notes, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func footerRow(company *entity.Company) core.Row {
	terms := "Плащане при доставка."
	if company.PaymentTermsDays > 0 {
		terms = fmt.Sprintf("Срок за плащане: %d дни от датата на доставка.", company.PaymentTermsDays)
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(terms, props.Text{Size: 8, Color: colorGray, Top: 1}),
			text.New("Документът не е данъчна фактура. Фактура се издава при експедиция на поръчката.",
				props.Text{Size: 6.5, Color: colorGray, Top: 6}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
