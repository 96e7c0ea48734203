package domain

import (
	"context"
	"errors"
)

// RenderRequest carries one invoice snapshot plus the optional image assets.
// Assets are attached at render time only and are not part of the aggregate.
type RenderRequest struct {
	Invoice   Invoice
	Logo      []byte
	Signature []byte
}

// Artifact is the finished, downloadable document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Service exposes invoice computation and rendering.
type Service interface {
	// Preview computes the monetary breakdown without rendering. It accepts
	// partial invoices so a host can mirror live totals while the user edits.
	Preview(ctx context.Context, inv Invoice) Breakdown
	// Render validates the invoice and produces the paginated PDF artifact.
	Render(ctx context.Context, req RenderRequest) (Artifact, error)
	// SuggestInvoiceNumber returns the next templated invoice number.
	SuggestInvoiceNumber() (string, error)
}

var (
	ErrRenderFailed = errors.New("render_failed")
)
