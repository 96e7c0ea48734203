package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/facture/internal/currency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney(t *testing.T) {
	usd, _ := currency.Lookup("USD")
	jpy, _ := currency.Lookup("JPY")
	aud, _ := currency.Lookup("AUD")

	tests := []struct {
		name   string
		amount string
		cur    currency.Currency
		want   string
	}{
		{"single-glyph symbol prefixes", "700", usd, "$700.00"},
		{"grouping with symbol", "1500", usd, "$1,500.00"},
		{"zero-decimal currency", "1500", jpy, "¥1,500"},
		{"multi-glyph symbol falls back to code suffix", "1500", aud, "1,500.00 AUD"},
		{"missing symbol appends code", "1500", currency.Currency{Code: "XTS", Decimals: 2}, "1,500.00 XTS"},
		{"fractional amount", "2362.5", usd, "$2,362.50"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.want, Money(amount, tc.cur))
		})
	}
}

func TestQuantity(t *testing.T) {
	assert.Equal(t, "2", Quantity(2))
	assert.Equal(t, "10", Quantity(10))
	assert.Equal(t, "2.5", Quantity(2.5))
	assert.Equal(t, "0", Quantity(0))
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "March 24, 2025", LongDate(time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "March 05, 2025", LongDate(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "", LongDate(time.Time{}))
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-001.pdf", Filename("INV-001"))
	assert.Equal(t, "invoice-42.pdf", Filename(" 42 "))
}

func TestInvoiceNumber(t *testing.T) {
	issuedAt := time.Date(2025, 3, 24, 10, 0, 0, 0, time.UTC)

	t.Run("default template", func(t *testing.T) {
		out, err := InvoiceNumber(DefaultInvoiceNumberTemplate, issuedAt, 7)
		require.NoError(t, err)
		assert.Equal(t, "INV-20250324-000007", out)
	})

	t.Run("unpadded sequence", func(t *testing.T) {
		out, err := InvoiceNumber("{YY}{MM}-{SEQ}", issuedAt, 42)
		require.NoError(t, err)
		assert.Equal(t, "2503-42", out)
	})

	t.Run("empty template rejected", func(t *testing.T) {
		_, err := InvoiceNumber("", issuedAt, 1)
		assert.Error(t, err)
	})

	t.Run("non-positive sequence rejected", func(t *testing.T) {
		_, err := InvoiceNumber(DefaultInvoiceNumberTemplate, issuedAt, 0)
		assert.Error(t, err)
	})

	t.Run("unresolved token rejected", func(t *testing.T) {
		_, err := InvoiceNumber("INV-{FOO}", issuedAt, 1)
		assert.Error(t, err)
	})
}
