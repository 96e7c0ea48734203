package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/smallbiznis/facture/internal/assist/domain"
	"github.com/smallbiznis/facture/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(endpoint string) domain.Service {
	return NewService(ServiceParam{
		Log: zap.NewNop(),
		Cfg: config.Config{
			Assist: config.AssistConfig{
				Endpoint: endpoint,
				APIKey:   "test-key",
				Model:    "gpt-4o-mini",
				Timeout:  5 * time.Second,
			},
		},
	})
}

func completionBackend(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.NotEmpty(t, req.Messages)

		resp := chatResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message chatMessage `json:"message"`
		}{Message: chatMessage{Role: "assistant", Content: content}})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

const completeInvoiceJSON = `{
  "from": {"name": "Acme Studio", "email": "billing@acme.dev", "phone": "+1 555 0100", "address": "1 Main St", "city": "Springfield", "zipCode": "12345", "country": "USA"},
  "to": {"name": "Globex Corp", "email": "ap@globex.com", "phone": "+1 555 0200", "address": "9 Market Sq", "city": "Shelbyville", "zipCode": "54321", "country": "USA"},
  "invoiceNumber": "INV-042",
  "issueDate": "2025-03-24",
  "dueDate": "2025-04-24",
  "items": [{"description": "Website Design", "quantity": 1, "price": 500}],
  "paymentMethod": "Cash",
  "currency": "USD"
}`

func TestGenerateDecodesFencedReply(t *testing.T) {
	backend := completionBackend(t, "```json\n"+completeInvoiceJSON+"\n```")
	defer backend.Close()

	candidate, err := newTestService(backend.URL).Generate(context.Background(), "invoice Globex for a website design, 500 dollars")
	require.NoError(t, err)

	assert.Equal(t, "INV-042", candidate.Invoice.InvoiceNumber)
	assert.Equal(t, "Globex Corp", candidate.Invoice.To.Name)
	assert.Empty(t, candidate.Violations)
	assert.True(t, candidate.Ready())
}

func TestGenerateReportsViolationsOnPartialReply(t *testing.T) {
	partial := `{"to": {"name": "Globex Corp"}, "items": [{"description": "Design", "quantity": 1, "price": 500}]}`
	backend := completionBackend(t, partial)
	defer backend.Close()

	candidate, err := newTestService(backend.URL).Generate(context.Background(), "invoice Globex")
	require.NoError(t, err)

	assert.NotEmpty(t, candidate.Violations)
	assert.False(t, candidate.Ready())
	assert.Equal(t, "Globex Corp", candidate.Invoice.To.Name)
}

func TestGenerateMapsNonJSONReplyToInvalidData(t *testing.T) {
	backend := completionBackend(t, "Sorry, I cannot help with that.")
	defer backend.Close()

	_, err := newTestService(backend.URL).Generate(context.Background(), "invoice Globex")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestGenerateMapsBackendErrorToGenerationFailed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer backend.Close()

	_, err := newTestService(backend.URL).Generate(context.Background(), "invoice Globex")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerateMapsEmptyCompletionToGenerationFailed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer backend.Close()

	_, err := newTestService(backend.URL).Generate(context.Background(), "invoice Globex")
	assert.ErrorIs(t, err, domain.ErrGenerationFailed)
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	backend := completionBackend(t, completeInvoiceJSON)
	defer backend.Close()

	_, err := newTestService(backend.URL).Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidData)
}

func TestGenerateWithoutEndpointIsNotConfigured(t *testing.T) {
	_, err := newTestService("").Generate(context.Background(), "invoice Globex")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}
