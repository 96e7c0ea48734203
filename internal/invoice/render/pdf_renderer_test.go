package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/smallbiznis/facture/internal/invoice/calc"
	"github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testInvoice() domain.Invoice {
	return domain.Invoice{
		From: domain.Party{
			Name:    "Acme Studio",
			Email:   "billing@acme.dev",
			Phone:   "+1 555 0100",
			Address: "1 Main St",
			City:    "Springfield",
			ZipCode: "12345",
			Country: "USA",
		},
		To: domain.Party{
			Name:    "Globex Corp",
			Email:   "ap@globex.com",
			Phone:   "+1 555 0200",
			Address: "9 Market Sq",
			City:    "Shelbyville",
			ZipCode: "54321",
			Country: "USA",
		},
		InvoiceNumber: "INV-20250324-000001",
		IssueDate:     "2025-03-24",
		DueDate:       "2025-04-24",
		Items: []domain.LineItem{
			{Description: "Website Design", Quantity: 1, Price: 500},
			{Description: "Hosting", Quantity: 1, Price: 200},
		},
		PaymentMethod: domain.PaymentMethodBankTransfer,
		BankDetails: &domain.BankDetails{
			BankName:      "First National",
			AccountNumber: "0012345678",
			AccountHolder: "Acme Studio LLC",
		},
		CurrencyCode: "USD",
		PaymentNotes: "Net 30",
		Discount:     domain.Adjustment{Enabled: true, Kind: domain.AdjustmentPercentage, Value: 10},
		Tax:          domain.Adjustment{Enabled: true, Kind: domain.AdjustmentPercentage, Value: 5},
	}
}

func renderBytes(t *testing.T, inv domain.Invoice, assets Assets) []byte {
	t.Helper()
	r := New(zap.NewNop())
	data, err := r.Render(inv, calc.Compute(inv.Items, inv.Discount, inv.Tax), assets)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	return data
}

func TestRenderProducesPDF(t *testing.T) {
	data := renderBytes(t, testInvoice(), Assets{})
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF document")
}

func TestRenderIsDeterministic(t *testing.T) {
	inv := testInvoice()
	first := renderBytes(t, inv, Assets{})
	second := renderBytes(t, inv, Assets{})
	assert.True(t, bytes.Equal(first, second), "same invoice must render to identical bytes")
}

func TestRenderWithImages(t *testing.T) {
	inv := testInvoice()
	withImages := renderBytes(t, inv, Assets{Logo: pngBytes(t), Signature: pngBytes(t)})
	without := renderBytes(t, inv, Assets{})
	assert.NotEqual(t, withImages, without)
	assert.Greater(t, len(withImages), len(without))
}

func TestRenderDegradesOnUndecodableImages(t *testing.T) {
	inv := testInvoice()
	data := renderBytes(t, inv, Assets{
		Logo:      []byte("not an image"),
		Signature: []byte{0x00, 0x01, 0x02},
	})

	// Undecodable assets fall back to the textual header and an omitted
	// signature block, which is exactly the no-asset rendering.
	assert.Equal(t, renderBytes(t, inv, Assets{}), data)
}

func TestRenderPaginatesLongItemLists(t *testing.T) {
	inv := testInvoice()
	inv.Items = nil
	for i := 0; i < 120; i++ {
		inv.Items = append(inv.Items, domain.LineItem{
			Description: fmt.Sprintf("Service line %03d", i+1),
			Quantity:    1,
			Price:       25,
		})
	}

	single := renderBytes(t, testInvoice(), Assets{})
	multi := renderBytes(t, inv, Assets{})

	pages := func(data []byte) int { return bytes.Count(data, []byte("/Type /Page")) }
	assert.Greater(t, pages(multi), pages(single), "long item lists must break onto additional pages")
}

func TestRenderWrapsLongDescriptions(t *testing.T) {
	inv := testInvoice()
	long := ""
	for i := 0; i < 20; i++ {
		long += "long running consulting engagement covering architecture reviews "
	}
	inv.Items = []domain.LineItem{
		{Description: long, Quantity: 1, Price: 1000},
		{Description: "Hosting", Quantity: 1, Price: 200},
	}

	data := renderBytes(t, inv, Assets{})
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderMissingOptionalBlocks(t *testing.T) {
	inv := testInvoice()
	inv.PaymentMethod = domain.PaymentMethodCash
	inv.BankDetails = nil
	inv.PaymentNotes = ""
	inv.Discount = domain.Adjustment{}
	inv.Tax = domain.Adjustment{}

	data := renderBytes(t, inv, Assets{})
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
