// Package service orchestrates validation, computation, and rendering for one
// invoice at a time. Each call works on an immutable snapshot; nothing is
// shared between invocations and nothing is persisted.
package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/smallbiznis/facture/internal/config"
	"github.com/smallbiznis/facture/internal/invoice/calc"
	"github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/invoice/format"
	"github.com/smallbiznis/facture/internal/invoice/render"
	"github.com/smallbiznis/facture/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log      *zap.Logger
	renderer render.Renderer
	obs      *metrics.Metrics

	numberTemplate string
	seq            atomic.Int64
}

// ServiceParam collects the service dependencies.
type ServiceParam struct {
	fx.In

	Log      *zap.Logger
	Renderer render.Renderer
	Obs      *metrics.Metrics `optional:"true"`
	Cfg      config.Config
}

func NewService(p ServiceParam) domain.Service {
	template := p.Cfg.InvoiceNumberTemplate
	if template == "" {
		template = format.DefaultInvoiceNumberTemplate
	}
	return &Service{
		log:            p.Log,
		renderer:       p.Renderer,
		obs:            p.Obs,
		numberTemplate: template,
	}
}

func (s *Service) Preview(_ context.Context, inv domain.Invoice) domain.Breakdown {
	return calc.Compute(inv.Items, inv.Discount, inv.Tax)
}

func (s *Service) SuggestInvoiceNumber() (string, error) {
	return format.InvoiceNumber(s.numberTemplate, time.Now().UTC(), s.seq.Add(1))
}

// Render validates the snapshot, computes its breakdown, and runs the layout
// pass. On any failure no artifact is returned; a caller that abandoned the
// request (context done) never receives a partial document either.
func (s *Service) Render(ctx context.Context, req domain.RenderRequest) (domain.Artifact, error) {
	start := time.Now()

	inv := req.Invoice
	if inv.InvoiceNumber == "" {
		number, err := s.SuggestInvoiceNumber()
		if err != nil {
			return domain.Artifact{}, err
		}
		inv.InvoiceNumber = number
	}

	if err := inv.Validate(); err != nil {
		s.obs.ObserveRender(metrics.OutcomeInvalid, 0)
		return domain.Artifact{}, err
	}

	breakdown := calc.Compute(inv.Items, inv.Discount, inv.Tax)

	data, err := s.renderer.Render(inv, breakdown, render.Assets{
		Logo:      req.Logo,
		Signature: req.Signature,
	})
	if err != nil {
		s.obs.ObserveRender(metrics.OutcomeError, 0)
		s.log.Error("invoice render failed",
			zap.String("invoice_number", inv.InvoiceNumber),
			zap.Error(err),
		)
		return domain.Artifact{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Artifact{}, err
	}

	s.obs.ObserveRender(metrics.OutcomeOK, time.Since(start))
	s.log.Info("invoice rendered",
		zap.String("invoice_number", inv.InvoiceNumber),
		zap.Int("items", len(inv.Items)),
		zap.Int("bytes", len(data)),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return domain.Artifact{
		Filename:    format.Filename(inv.InvoiceNumber),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}
