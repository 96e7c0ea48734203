package server

import (
	"encoding/base64"
	"strings"

	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// renderPayload is the render request body. Logo and signature arrive as data
// URLs or bare base64, the two shapes the capture/upload collaborators emit.
type renderPayload struct {
	Invoice   invoicedomain.Invoice `json:"invoice"`
	Logo      string                `json:"logo,omitempty"`
	Signature string                `json:"signature,omitempty"`
}

// decodeImageInput turns a data URL or base64 string into raw bytes. Anything
// undecodable is treated as an absent asset; the renderer owns the fallback.
func decodeImageInput(value string) []byte {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "data:") {
		idx := strings.Index(value, ",")
		if idx < 0 {
			return nil
		}
		value = value[idx+1:]
	}

	data, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	return data
}
