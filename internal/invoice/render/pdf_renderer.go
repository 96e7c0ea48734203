package render

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/smallbiznis/facture/internal/currency"
	"github.com/smallbiznis/facture/internal/invoice/calc"
	"github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/invoice/format"
	"go.uber.org/zap"
)

// A4 portrait with symmetric margins. The items table spans the usable width
// on a 12-column grid: 6/2/2/2 for description/quantity/price/subtotal.
const (
	marginMM      = 15.0
	pageWidthMM   = 210.0
	usableWidthMM = pageWidthMM - 2*marginMM

	bodyFontSize   = 10.0
	tableFontSize  = 9.0
	tableLineMM    = 4.0
	descColumnSpan = 6
)

type pdfRenderer struct {
	log *zap.Logger
}

// New builds the maroto-backed PDF renderer.
func New(log *zap.Logger) Renderer {
	return &pdfRenderer{log: log}
}

// Render lays the invoice out top to bottom: header band, parties and dates,
// items table, totals, payment details, contact footer, signature. Rows that
// would cross the bottom margin move to a fresh page before being emitted.
func (r *pdfRenderer) Render(inv domain.Invoice, breakdown domain.Breakdown, assets Assets) ([]byte, error) {
	cur := inv.DisplayCurrency()

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginMM).
		WithRightMargin(marginMM).
		WithTopMargin(marginMM).
		WithBottomMargin(marginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: bodyFontSize}).
		WithTitle("Invoice "+inv.InvoiceNumber, true).
		WithAuthor(inv.From.Name, true).
		WithCreationDate(inv.IssuedAt()).
		Build()

	m := maroto.New(cfg)

	logo := decodeAsset(assets.Logo)
	if len(assets.Logo) > 0 && logo == nil {
		r.log.Warn("logo image undecodable, falling back to biller name",
			zap.Int("bytes", len(assets.Logo)))
	}
	signature := decodeAsset(assets.Signature)
	if len(assets.Signature) > 0 && signature == nil {
		r.log.Warn("signature image undecodable, omitting signature block",
			zap.Int("bytes", len(assets.Signature)))
	}

	m.AddRows(headerRow(inv, logo))
	m.AddRows(row.New(4))
	m.AddRows(partiesRow(inv))
	m.AddRows(row.New(6))

	m.AddRows(tableHeaderRow())
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))
	for _, item := range inv.Items {
		m.AddRows(itemRow(item, cur))
	}
	m.AddRows(line.NewRow(2, props.Line{Thickness: 0.3}))

	for _, totals := range totalsRows(inv, breakdown, cur) {
		m.AddRows(totals)
	}

	m.AddRows(row.New(8))
	m.AddRows(paymentRow(inv))
	m.AddRows(row.New(8))
	m.AddRows(contactRows(inv)...)

	if signature != nil {
		m.AddRows(row.New(8))
		m.AddRows(signatureRows(signature)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return stableFontOrder(doc.GetBytes()), nil
}

// headerRow places the logo (or the biller name) top-left and the invoice
// title plus biller contact lines right-aligned in the same band.
func headerRow(inv domain.Invoice, logo *imageAsset) core.Row {
	left := col.New(4)
	if logo != nil {
		left.Add(image.NewFromBytes(logo.data, logo.ext, props.Rect{
			Percent: 90,
		}))
	} else {
		left.Add(text.New(inv.From.Name, props.Text{
			Size:  14,
			Style: fontstyle.Bold,
		}))
	}

	right := col.New(8).Add(
		text.New("Invoice "+inv.InvoiceNumber, props.Text{
			Size:  14,
			Align: align.Right,
		}),
		text.New(inv.From.Email, props.Text{Top: 8, Size: 9, Align: align.Right}),
		text.New(inv.From.Address, props.Text{Top: 12, Size: 9, Align: align.Right}),
		text.New(inv.From.City+", "+inv.From.ZipCode, props.Text{Top: 16, Size: 9, Align: align.Right}),
		text.New(inv.From.Country, props.Text{Top: 20, Size: 9, Align: align.Right}),
	)

	return row.New(26).Add(left, right)
}

// partiesRow prints the bill-to block on the left and the issue/due dates on
// the right; the band is tall enough for the taller of the two.
func partiesRow(inv domain.Invoice) core.Row {
	billTo := col.New(6).Add(
		text.New("Bill To:", props.Text{Size: 11, Style: fontstyle.Bold}),
		text.New(inv.To.Name, props.Text{Top: 6, Size: 9}),
		text.New(inv.To.Address, props.Text{Top: 10, Size: 9}),
		text.New(inv.To.City+", "+inv.To.ZipCode, props.Text{Top: 14, Size: 9}),
		text.New(inv.To.Country, props.Text{Top: 18, Size: 9}),
	)

	dates := col.New(6).Add(
		text.New("Invoice Date: "+format.LongDate(inv.IssuedAt()), props.Text{
			Size:  9,
			Align: align.Right,
		}),
		text.New("Due Date: "+format.LongDate(inv.DueAt()), props.Text{
			Top:   4,
			Size:  9,
			Align: align.Right,
		}),
	)

	return row.New(24).Add(billTo, dates)
}

func tableHeaderRow() core.Row {
	return row.New(6).Add(
		text.NewCol(descColumnSpan, "Description", props.Text{Style: fontstyle.Bold, Size: tableFontSize}),
		text.NewCol(2, "Quantity", props.Text{Style: fontstyle.Bold, Size: tableFontSize, Align: align.Right}),
		text.NewCol(2, "Price", props.Text{Style: fontstyle.Bold, Size: tableFontSize, Align: align.Right}),
		text.NewCol(2, "Subtotal", props.Text{Style: fontstyle.Bold, Size: tableFontSize, Align: align.Right}),
	)
}

// itemRow emits one table row. Long descriptions wrap inside their column and
// the row grows with the wrapped line count so rows never collide.
func itemRow(item domain.LineItem, cur currency.Currency) core.Row {
	descWidth := usableWidthMM * float64(descColumnSpan) / 12.0
	lines := wrappedLineCount(item.Description, descWidth, tableFontSize)
	height := float64(lines)*tableLineMM + 2

	lineTotal := format.Money(calc.LineAmount(item), cur)

	return row.New(height).Add(
		text.NewCol(descColumnSpan, item.Description, props.Text{Size: tableFontSize}),
		text.NewCol(2, format.Quantity(item.Quantity), props.Text{Size: tableFontSize, Align: align.Right}),
		text.NewCol(2, format.Money(calc.UnitPrice(item), cur), props.Text{Size: tableFontSize, Align: align.Right}),
		text.NewCol(2, lineTotal, props.Text{Size: tableFontSize, Align: align.Right}),
	)
}

// totalsRows prints the breakdown: subtotal always, discount and tax only when
// their adjustment is enabled with a non-zero value, grand total in bold.
func totalsRows(inv domain.Invoice, b domain.Breakdown, cur currency.Currency) []core.Row {
	rows := []core.Row{
		totalsLine("Subtotal:", format.Money(b.Subtotal, cur), false),
	}

	if inv.Discount.Enabled && inv.Discount.Value > 0 {
		rows = append(rows, totalsLine(
			adjustmentLabel("Discount", inv.Discount),
			"-"+format.Money(b.Discount, cur),
			false,
		))
	}

	if inv.Tax.Enabled && inv.Tax.Value > 0 {
		rows = append(rows, totalsLine(
			adjustmentLabel("Tax", inv.Tax),
			format.Money(b.Tax, cur),
			false,
		))
	}

	rows = append(rows, totalsLine("Total:", format.Money(b.Total, cur), true))
	return rows
}

func totalsLine(label, amount string, emphasized bool) core.Row {
	style := fontstyle.Normal
	if emphasized {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(6),
		text.NewCol(3, label, props.Text{Size: tableFontSize, Style: style, Align: align.Right}),
		text.NewCol(3, amount, props.Text{Size: tableFontSize, Style: style, Align: align.Right}),
	)
}

func adjustmentLabel(name string, adj domain.Adjustment) string {
	if adj.Kind == domain.AdjustmentPercentage {
		return fmt.Sprintf("%s (%s%%):", name, format.Quantity(adj.Value))
	}
	return name + ":"
}

// paymentRow prints bank details on the left (bank-transfer invoices only) and
// the payment method plus optional notes right-aligned in the same band.
func paymentRow(inv domain.Invoice) core.Row {
	left := col.New(6)
	if inv.PaymentMethod == domain.PaymentMethodBankTransfer && inv.BankDetails != nil {
		left.Add(
			text.New("Bank Details", props.Text{Size: 11, Style: fontstyle.Bold}),
			text.New("Bank Name: "+inv.BankDetails.BankName, props.Text{Top: 6, Size: 9}),
			text.New("Account Number: "+inv.BankDetails.AccountNumber, props.Text{Top: 10, Size: 9}),
			text.New("Account Holder: "+inv.BankDetails.AccountHolder, props.Text{Top: 14, Size: 9}),
		)
	}

	right := col.New(6).Add(
		text.New("Payment Method: "+string(inv.PaymentMethod), props.Text{
			Size:  9,
			Align: align.Right,
		}),
	)
	if inv.PaymentNotes != "" {
		right.Add(text.New("Notes: "+inv.PaymentNotes, props.Text{
			Top:   4,
			Size:  9,
			Align: align.Right,
		}))
	}

	return row.New(20).Add(left, right)
}

func contactRows(inv domain.Invoice) []core.Row {
	return []core.Row{
		row.New(6).Add(text.NewCol(12, "Contact Information", props.Text{
			Size:  11,
			Style: fontstyle.Bold,
		})),
		row.New(6).Add(text.NewCol(12,
			"If you have any questions concerning this invoice, use the following contact information:",
			props.Text{Size: 9},
		)),
		row.New(14).Add(col.New(12).Add(
			text.New(inv.From.Name, props.Text{Size: 9}),
			text.New(inv.From.Email, props.Text{Top: 4, Size: 9}),
			text.New(inv.From.Phone, props.Text{Top: 8, Size: 9}),
		)),
	}
}

// signatureRows places the signature image near the bottom-right with its
// centered caption. The block is omitted entirely when no image is present.
func signatureRows(signature *imageAsset) []core.Row {
	return []core.Row{
		row.New(25).Add(
			col.New(8),
			image.NewFromBytesCol(4, signature.data, signature.ext, props.Rect{
				Percent: 90,
				Center:  true,
			}),
		),
		row.New(6).Add(
			col.New(8),
			text.NewCol(4, "Signature", props.Text{Size: 9, Align: align.Center}),
		),
	}
}
