// Package server hosts the HTTP surface: render, preview, assist, currency
// catalog, health, and metrics.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	assistdomain "github.com/smallbiznis/facture/internal/assist/domain"
	"github.com/smallbiznis/facture/internal/config"
	invoicedomain "github.com/smallbiznis/facture/internal/invoice/domain"
	obslogger "github.com/smallbiznis/facture/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/facture/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(run),
)

// NewEngine builds the gin engine with recovery, request logging, and the
// error-mapping middleware, plus the health and metrics endpoints.
func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	invoiceSvc invoicedomain.Service
	assistSvc  assistdomain.Service
	obs        *obsmetrics.Metrics
}

// ServerParams collects the server dependencies.
type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	InvoiceSvc invoicedomain.Service
	AssistSvc  assistdomain.Service
	Obs        *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		invoiceSvc: p.InvoiceSvc,
		assistSvc:  p.AssistSvc,
		obs:        p.Obs,
	}
}

// RegisterAPIRoutes mounts the v1 API.
func (s *Server) RegisterAPIRoutes() {
	v1 := s.engine.Group("/v1")

	v1.POST("/invoices/render", s.RenderInvoice)
	v1.POST("/invoices/preview", s.PreviewInvoice)
	v1.GET("/invoices/number", s.SuggestInvoiceNumber)

	v1.POST("/assist/invoice", s.GenerateInvoice)

	v1.GET("/currencies", s.ListCurrencies)
}
