// Package observability wires logging middleware and metrics.
package observability

import (
	"github.com/smallbiznis/facture/internal/observability/metrics"
	"go.uber.org/fx"
)

var Module = fx.Module("observability",
	fx.Provide(
		metrics.Default,
	),
)
