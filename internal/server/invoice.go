package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

// RenderInvoice produces the PDF artifact for one invoice snapshot and serves
// it as a download named after the invoice number.
func (s *Server) RenderInvoice(c *gin.Context) {
	var payload renderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	artifact, err := s.invoiceSvc.Render(c.Request.Context(), invoicedomain.RenderRequest{
		Invoice:   payload.Invoice,
		Logo:      decodeImageInput(payload.Logo),
		Signature: decodeImageInput(payload.Signature),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// PreviewInvoice returns the computed breakdown without rendering, for hosts
// mirroring live totals during editing.
func (s *Server) PreviewInvoice(c *gin.Context) {
	var inv invoicedomain.Invoice
	if err := c.ShouldBindJSON(&inv); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	breakdown := s.invoiceSvc.Preview(c.Request.Context(), inv)
	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

// SuggestInvoiceNumber returns the next templated invoice number.
func (s *Server) SuggestInvoiceNumber(c *gin.Context) {
	number, err := s.invoiceSvc.SuggestInvoiceNumber()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"invoiceNumber": number}})
}
