package domain

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes one field-level violation.
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every violation found in one pass.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v *ValidationErrors) Error() string {
	return "validation error"
}

// AsValidationErrors unwraps err into *ValidationErrors when possible.
func AsValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	v.RegisterStructValidation(invoiceStructLevel, Invoice{})
	return v
}

func invoiceStructLevel(sl validator.StructLevel) {
	inv := sl.Current().Interface().(Invoice)

	issued, issueErr := time.Parse(DateLayout, inv.IssueDate)
	if inv.IssueDate != "" && issueErr != nil {
		sl.ReportError(inv.IssueDate, "issueDate", "IssueDate", "date", "")
	}
	due, dueErr := time.Parse(DateLayout, inv.DueDate)
	if inv.DueDate != "" && dueErr != nil {
		sl.ReportError(inv.DueDate, "dueDate", "DueDate", "date", "")
	}
	if issueErr == nil && dueErr == nil && due.Before(issued) {
		sl.ReportError(inv.DueDate, "dueDate", "DueDate", "date_order", "")
	}

	if inv.PaymentMethod == PaymentMethodBankTransfer {
		d := inv.BankDetails
		if d == nil || d.BankName == "" || d.AccountNumber == "" || d.AccountHolder == "" {
			sl.ReportError(inv.BankDetails, "bankDetails", "BankDetails", "bank_details", "")
		}
	}
}

// Validate checks the full aggregate: required fields, email shape, item
// bounds, date ordering, and bank-detail completeness. It returns
// *ValidationErrors listing every violation, or nil.
func (i Invoice) Validate() error {
	err := validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationErrors{Errors: make([]ValidationError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Errors = append(out.Errors, ValidationError{
			Field:   fieldPath(fe.Namespace()),
			Code:    fe.Tag(),
			Message: validationMessage(fe.Tag()),
		})
	}
	return out
}

func fieldPath(namespace string) string {
	// Namespace arrives as "Invoice.from.name"; the root is noise.
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func validationMessage(tag string) string {
	switch tag {
	case "required":
		return "field is required"
	case "email":
		return "invalid email address"
	case "min":
		return "at least one item is required"
	case "gte":
		return "value is below the allowed minimum"
	case "oneof":
		return "value is not one of the allowed options"
	case "date":
		return "invalid date, expected YYYY-MM-DD"
	case "date_order":
		return "due date can not be before issue date"
	case "bank_details":
		return "bank details are required for bank transfer"
	default:
		return "invalid value"
	}
}
