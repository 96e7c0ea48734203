package main

import (
	"github.com/smallbiznis/facture/internal/assist"
	"github.com/smallbiznis/facture/internal/config"
	"github.com/smallbiznis/facture/internal/invoice"
	"github.com/smallbiznis/facture/internal/logger"
	"github.com/smallbiznis/facture/internal/observability"
	"github.com/smallbiznis/facture/internal/server"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		observability.Module,

		// Functional domains
		invoice.Module,
		assist.Module,

		server.Module,
	)
	app.Run()
}
