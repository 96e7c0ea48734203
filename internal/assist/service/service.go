// Package service calls an OpenAI-compatible chat-completion backend and
// turns its output into a candidate invoice.
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/smallbiznis/facture/internal/assist/domain"
	"github.com/smallbiznis/facture/internal/config"
	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var codeFenceRe = regexp.MustCompile("```json\n?|```\n?")

type Service struct {
	log    *zap.Logger
	cfg    config.AssistConfig
	client *http.Client
}

// ServiceParam collects the service dependencies.
type ServiceParam struct {
	fx.In

	Log *zap.Logger
	Cfg config.Config
}

func NewService(p ServiceParam) domain.Service {
	return &Service{
		log:    p.Log,
		cfg:    p.Cfg.Assist,
		client: &http.Client{Timeout: p.Cfg.Assist.Timeout},
	}
}

// chat-completion wire types, request and response trimmed to what we use.
type chatRequest struct {
	Model       string        `json:"model"`
	Temperature float64       `json:"temperature"`
	Messages    []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends the prompt to the model and decodes the reply into a
// candidate invoice. Transport and backend failures map to
// ErrGenerationFailed; replies that are not JSON or not the invoice shape map
// to ErrInvalidData. A decodable candidate is returned together with its
// validation violations so the caller can route it through the form layer.
func (s *Service) Generate(ctx context.Context, prompt string) (domain.Candidate, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.Candidate{}, fmt.Errorf("%w: empty prompt", domain.ErrInvalidData)
	}
	if s.cfg.Endpoint == "" {
		return domain.Candidate{}, domain.ErrNotConfigured
	}

	raw, err := s.complete(ctx, buildPrompt(prompt))
	if err != nil {
		return domain.Candidate{}, err
	}

	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))

	var inv invoicedomain.Invoice
	if err := json.Unmarshal([]byte(cleaned), &inv); err != nil {
		s.log.Warn("assist returned undecodable payload", zap.Error(err))
		return domain.Candidate{}, fmt.Errorf("%w: %v", domain.ErrInvalidData, err)
	}

	candidate := domain.Candidate{Invoice: inv}
	if vErr := invoicedomain.AsValidationErrors(inv.Validate()); vErr != nil {
		candidate.Violations = vErr.Errors
	}
	return candidate, nil
}

func (s *Service) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       s.cfg.Model,
		Temperature: s.cfg.Temperature,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: backend status %d", domain.ErrGenerationFailed, resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: empty completion", domain.ErrGenerationFailed)
	}
	return parsed.Choices[0].Message.Content, nil
}
