package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	obsmetrics "github.com/smallbiznis/facture/internal/observability/metrics"
)

type generatePayload struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateInvoice converts free text into a candidate invoice via the AI
// backend. The candidate is returned with its validation violations so the
// form layer can route the user through any gaps before rendering.
func (s *Server) GenerateInvoice(c *gin.Context) {
	var payload generatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		s.obs.ObserveAssist(obsmetrics.OutcomeBadPayload)
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	candidate, err := s.assistSvc.Generate(c.Request.Context(), payload.Prompt)
	if err != nil {
		s.obs.ObserveAssist(obsmetrics.OutcomeError)
		AbortWithError(c, err)
		return
	}

	outcome := obsmetrics.OutcomeOK
	if !candidate.Ready() {
		outcome = obsmetrics.OutcomeInvalid
	}
	s.obs.ObserveAssist(outcome)

	c.JSON(http.StatusOK, gin.H{
		"data":       candidate.Invoice,
		"valid":      candidate.Ready(),
		"violations": candidate.Violations,
	})
}
