package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/crowdfuel/backend/internal/infrastructure/config"
	"github.com/crowdfuel/backend/internal/infrastructure/observability"
	"github.com/rs/zerolog"
)

type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *observability.Metrics
}

func New(ctx context.Context, serviceName string, metricsNamespace string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(cfg.Observability.LogLevel, os.Stdout)
	logger.Info().Str("service", serviceName).Str("environment", cfg.Environment).Msg("Starting")

	// The process boots without Stripe credentials so the health check stays
	// reachable; business endpoints fail until the keys are set.
	if cfg.Stripe.SecretKey == "" {
		logger.Error().Msg("STRIPE SECRET KEY IS NOT CONFIGURED - all payment endpoints will fail until it is set")
	}
	if cfg.Stripe.WebhookSecret == "" {
		logger.Error().Msg("Stripe webhook secret is not configured - webhook deliveries will be rejected")
	}

	if cfg.Observability.EnableTracing {
		tp, err := observability.InitTracer(serviceName, cfg.Observability.JaegerEndpoint)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize tracer, continuing without tracing")
		} else {
			go func() {
				<-ctx.Done()
				observability.Shutdown(context.Background(), tp)
			}()
			logger.Info().Msg("Tracing enabled")
		}
	}

	metrics := observability.NewMetrics(metricsNamespace, nil)
	logger.Info().Msg("Metrics initialized")

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
	}, nil
}
