// Package domain contains the invoice aggregate and its validation rules.
//
// The aggregate is ephemeral: it is assembled by a caller (form session or AI
// generation), consumed once by the renderer, and never persisted.
package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/facture/internal/currency"
)

// DateLayout is the wire format for issue and due dates.
const DateLayout = "2006-01-02"

// PaymentMethod enumerates the accepted settlement methods.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodCheck        PaymentMethod = "Check"
)

// AdjustmentKind selects how an Adjustment value is interpreted.
type AdjustmentKind string

const (
	AdjustmentPercentage AdjustmentKind = "percentage"
	AdjustmentFixed      AdjustmentKind = "fixed"
)

// Party identifies one side of the invoice (biller or client).
type Party struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	ZipCode string `json:"zipCode" validate:"required"`
	Country string `json:"country" validate:"required"`
}

// LineItem is one billable row. List order is significant and drives layout order.
type LineItem struct {
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"gte=1"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// Adjustment is a discount or tax rule. When disabled or zero-valued it
// contributes nothing to totals regardless of kind.
type Adjustment struct {
	Enabled bool           `json:"enabled"`
	Kind    AdjustmentKind `json:"type" validate:"omitempty,oneof=percentage fixed"`
	Value   float64        `json:"value" validate:"gte=0"`
}

// BankDetails are required only for bank-transfer settlement.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountHolder string `json:"accountHolder"`
}

// Invoice is the aggregate root consumed by the calculator and renderer.
type Invoice struct {
	From          Party              `json:"from"`
	To            Party              `json:"to"`
	InvoiceNumber string             `json:"invoiceNumber" validate:"required"`
	IssueDate     string             `json:"issueDate" validate:"required"`
	DueDate       string             `json:"dueDate" validate:"required"`
	Items         []LineItem         `json:"items" validate:"required,min=1,dive"`
	PaymentMethod PaymentMethod      `json:"paymentMethod" validate:"required,oneof='Bank Transfer' Cash Check"`
	BankDetails   *BankDetails       `json:"bankDetails,omitempty"`
	CurrencyCode  string             `json:"currency" validate:"required"`
	Currency      *currency.Currency `json:"selectedCurrency,omitempty"`
	PaymentNotes  string             `json:"paymentNotes,omitempty"`
	Discount      Adjustment         `json:"discount"`
	Tax           Adjustment         `json:"tax"`
}

// DisplayCurrency resolves the currency used for formatting: the embedded
// selection when present, the catalog entry for the code otherwise, and a
// bare-code fallback when the code is unknown.
func (i Invoice) DisplayCurrency() currency.Currency {
	if i.Currency != nil {
		return *i.Currency
	}
	if c, ok := currency.Lookup(i.CurrencyCode); ok {
		return c
	}
	return currency.Currency{Code: i.CurrencyCode, Decimals: 2}
}

// IssuedAt parses the issue date. The zero time is returned for a value that
// never passed validation.
func (i Invoice) IssuedAt() time.Time {
	t, err := time.Parse(DateLayout, i.IssueDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DueAt parses the due date, zero time on failure.
func (i Invoice) DueAt() time.Time {
	t, err := time.Parse(DateLayout, i.DueDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Breakdown is the derived monetary tuple for one invoice.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}
