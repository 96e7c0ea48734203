// Package calc computes the monetary breakdown of an invoice.
//
// Every function here is pure and deterministic: no clock, no I/O, no shared
// state. The host calls these on demand whenever it needs fresh totals.
package calc

import (
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/facture/internal/invoice/domain"
)

var hundred = decimal.NewFromInt(100)

// LineAmount is quantity times unit price for a single item.
func LineAmount(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.Price))
}

// UnitPrice lifts an item's unit price into decimal space.
func UnitPrice(item domain.LineItem) decimal.Decimal {
	return decimal.NewFromFloat(item.Price)
}

// Subtotal sums quantity times unit price over all items. An empty list
// yields zero.
func Subtotal(items []domain.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(LineAmount(item))
	}
	return total
}

// DiscountAmount resolves the discount adjustment against the raw subtotal.
// A disabled or zero-valued adjustment contributes nothing. A fixed discount
// is taken at face value and is deliberately not clamped to the subtotal, so
// an oversized fixed discount drives the pre-tax base negative.
func DiscountAmount(subtotal decimal.Decimal, discount domain.Adjustment) decimal.Decimal {
	return adjustmentAmount(subtotal, discount)
}

// TaxAmount resolves the tax adjustment against the post-discount base.
// Discount always applies before tax; the order is part of the contract.
func TaxAmount(baseAfterDiscount decimal.Decimal, tax domain.Adjustment) decimal.Decimal {
	return adjustmentAmount(baseAfterDiscount, tax)
}

// Total is subtotal minus discount plus tax, with tax computed on the
// post-discount base.
func Total(items []domain.LineItem, discount, tax domain.Adjustment) decimal.Decimal {
	subtotal := Subtotal(items)
	afterDiscount := subtotal.Sub(DiscountAmount(subtotal, discount))
	return afterDiscount.Add(TaxAmount(afterDiscount, tax))
}

// Compute derives the full breakdown tuple in one pass.
func Compute(items []domain.LineItem, discount, tax domain.Adjustment) domain.Breakdown {
	subtotal := Subtotal(items)
	discountAmount := DiscountAmount(subtotal, discount)
	afterDiscount := subtotal.Sub(discountAmount)
	taxAmount := TaxAmount(afterDiscount, tax)

	return domain.Breakdown{
		Subtotal: subtotal,
		Discount: discountAmount,
		Tax:      taxAmount,
		Total:    afterDiscount.Add(taxAmount),
	}
}

func adjustmentAmount(base decimal.Decimal, adj domain.Adjustment) decimal.Decimal {
	if !adj.Enabled || adj.Value == 0 {
		return decimal.Zero
	}
	value := decimal.NewFromFloat(adj.Value)
	if adj.Kind == domain.AdjustmentPercentage {
		return base.Mul(value).Div(hundred)
	}
	return value
}
