// Package format renders invoice values for display: currency-aware amounts,
// long-form dates, quantities, artifact filenames, and templated invoice
// numbers. Arithmetic never happens here.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/facture/internal/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Display locale is fixed; the product has a single display language.
var printer = message.NewPrinter(language.English)

// Money formats an amount under the selected currency. A single-glyph symbol
// prefixes the grouped number ("$1,500.00"); otherwise the ISO code is
// appended ("1,500 JPY"). Fraction digits follow the currency's decimal
// convention, never the arithmetic precision.
func Money(amount decimal.Decimal, cur currency.Currency) string {
	value, _ := amount.Float64()
	grouped := printer.Sprint(number.Decimal(value, number.Scale(cur.Decimals)))

	if cur.Symbol == "" || utf8.RuneCountInString(cur.Symbol) > 1 {
		code := cur.Code
		if code == "" {
			code = "$"
		}
		return grouped + " " + code
	}
	return cur.Symbol + grouped
}

// Quantity renders a quantity as a plain number with no grouping and no
// trailing fraction zeros.
func Quantity(value float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", value), "0"), ".")
}

// LongDate renders a date in the document's long form, e.g. "March 24, 2025".
func LongDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 02, 2006")
}

// Filename derives the deterministic artifact name for an invoice number.
func Filename(invoiceNumber string) string {
	return "invoice-" + strings.TrimSpace(invoiceNumber) + ".pdf"
}

var seqPadRe = regexp.MustCompile(`\{SEQ(\d+)\}`)

// DefaultInvoiceNumberTemplate is used when no template is configured.
const DefaultInvoiceNumberTemplate = "INV-{YYYY}{MM}{DD}-{SEQ6}"

// InvoiceNumber expands a number template against an issue time and a
// monotonic sequence. Supported tokens: {YYYY} {YY} {MM} {DD} {SEQ} {SEQn}.
// The function is pure; callers own the sequence source.
func InvoiceNumber(template string, issuedAt time.Time, seq int64) (string, error) {
	if template == "" {
		return "", fmt.Errorf("invoice number template is empty")
	}
	if seq <= 0 {
		return "", fmt.Errorf("invalid invoice sequence: %d", seq)
	}

	out := template
	out = strings.ReplaceAll(out, "{YYYY}", issuedAt.Format("2006"))
	out = strings.ReplaceAll(out, "{YY}", issuedAt.Format("06"))
	out = strings.ReplaceAll(out, "{MM}", issuedAt.Format("01"))
	out = strings.ReplaceAll(out, "{DD}", issuedAt.Format("02"))
	out = strings.ReplaceAll(out, "{SEQ}", strconv.FormatInt(seq, 10))

	out = seqPadRe.ReplaceAllStringFunc(out, func(m string) string {
		match := seqPadRe.FindStringSubmatch(m)
		if len(match) != 2 {
			return m
		}
		width, err := strconv.Atoi(match[1])
		if err != nil || width <= 0 {
			return m
		}
		return fmt.Sprintf("%0*d", width, seq)
	})

	if strings.Contains(out, "{") || strings.Contains(out, "}") {
		return "", fmt.Errorf("unresolved token in invoice number template: %s", out)
	}
	return out, nil
}
