// Package metrics exposes the application's prometheus instruments.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Render and assist outcomes used as label values.
const (
	OutcomeOK         = "ok"
	OutcomeInvalid    = "invalid"
	OutcomeError      = "error"
	OutcomeBadPayload = "bad_payload"
)

// Metrics captures render and AI-assist health signals.
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration prometheus.Histogram
	assistTotal    *prometheus.CounterVec
}

var (
	metricsOnce sync.Once
	shared      *Metrics
)

// Default returns the singleton registered against the default registerer.
func Default() *Metrics {
	metricsOnce.Do(func() {
		shared = New(prometheus.DefaultRegisterer)
	})
	return shared
}

// ResetForTest resets the singleton so tests can register fresh instruments.
func ResetForTest() {
	metricsOnce = sync.Once{}
	shared = nil
}

// New registers the instrument set against the given registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		rendersTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facture_renders_total",
			Help: "Invoice render attempts by outcome.",
		}, []string{"outcome"}),
		renderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "facture_render_duration_seconds",
			Help:    "Wall time of one full layout pass.",
			Buckets: prometheus.DefBuckets,
		}),
		assistTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "facture_assist_requests_total",
			Help: "AI generation attempts by outcome.",
		}, []string{"outcome"}),
	}

	registerer.MustRegister(m.rendersTotal, m.renderDuration, m.assistTotal)
	return m
}

// ObserveRender records one render attempt.
func (m *Metrics) ObserveRender(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOK {
		m.renderDuration.Observe(elapsed.Seconds())
	}
}

// ObserveAssist records one AI generation attempt.
func (m *Metrics) ObserveAssist(outcome string) {
	if m == nil {
		return
	}
	m.assistTotal.WithLabelValues(outcome).Inc()
}
