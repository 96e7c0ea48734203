// Package domain defines the AI-assisted entry contract: free text in,
// candidate invoice out, with a failure taxonomy the UI can message precisely.
package domain

import (
	"context"
	"errors"

	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

var (
	// ErrGenerationFailed covers transport problems, non-2xx backends, and
	// empty model output ("generation failed").
	ErrGenerationFailed = errors.New("generation_failed")
	// ErrInvalidData covers model output that is not JSON or does not match
	// the invoice shape ("invalid data generated").
	ErrInvalidData = errors.New("invalid_data_generated")
	// ErrNotConfigured is returned when no assist backend is configured.
	ErrNotConfigured = errors.New("assist_not_configured")
)

// Candidate is a structurally well-formed invoice produced by the model. It
// still goes through the regular validation layer: Violations lists what a
// user must fix before the candidate can be rendered.
type Candidate struct {
	Invoice    invoicedomain.Invoice           `json:"invoice"`
	Violations []invoicedomain.ValidationError `json:"violations,omitempty"`
}

// Ready reports whether the candidate would pass validation as-is.
func (c Candidate) Ready() bool {
	return len(c.Violations) == 0
}

// Service converts a free-text prompt into a candidate invoice.
type Service interface {
	Generate(ctx context.Context, prompt string) (Candidate, error)
}
