// Package render lays an invoice out onto paginated A4 pages and produces the
// final PDF bytes.
package render

import (
	"github.com/smallbiznis/facture/internal/invoice/domain"
)

// Assets are the optional binary images attached at render time. Undecodable
// data degrades to the textual fallback for its block; it never fails a render.
type Assets struct {
	Logo      []byte
	Signature []byte
}

// Renderer turns an invoice snapshot plus its computed breakdown into
// document bytes. Implementations must be stateless across calls.
type Renderer interface {
	Render(inv domain.Invoice, breakdown domain.Breakdown, assets Assets) ([]byte, error)
}
