package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	assistdomain "github.com/smallbiznis/facture/internal/assist/domain"
	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
)

type errorPayload struct {
	Type    string                          `json:"type"`
	Message string                          `json:"message"`
	Errors  []invoicedomain.ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware maps errors recorded on the context onto typed JSON
// responses after the handler chain finishes.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

// AbortWithError records err and stops the handler chain; the middleware
// writes the response.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	if vErr := invoicedomain.AsValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{
			Type:    "invalid_request",
			Message: "invalid request",
		}
	case errors.Is(err, assistdomain.ErrInvalidData):
		return http.StatusUnprocessableEntity, errorPayload{
			Type:    "invalid_data_generated",
			Message: "invalid data generated, please try again",
		}
	case errors.Is(err, assistdomain.ErrGenerationFailed):
		return http.StatusBadGateway, errorPayload{
			Type:    "generation_failed",
			Message: "failed to generate invoice data, please try again",
		}
	case errors.Is(err, assistdomain.ErrNotConfigured):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "assist_not_configured",
			Message: "assist backend is not configured",
		}
	case errors.Is(err, invoicedomain.ErrRenderFailed):
		return http.StatusInternalServerError, errorPayload{
			Type:    "render_failed",
			Message: "invoice could not be rendered",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
