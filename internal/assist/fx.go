package assist

import (
	"github.com/smallbiznis/facture/internal/assist/service"
	"go.uber.org/fx"
)

var Module = fx.Module("assist.service",
	fx.Provide(service.NewService),
)
