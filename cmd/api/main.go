package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/crowdfuel/backend/internal/bootstrap"
	"github.com/crowdfuel/backend/internal/controller"
	"github.com/crowdfuel/backend/internal/providers"
	"github.com/crowdfuel/backend/internal/service"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, "crowdfuel-api", "crowdfuel")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}

	// --- Payment gateway ---
	var gateway providers.ConnectGateway
	if app.Config.Stripe.SecretKey != "" {
		gateway = providers.NewStripeGateway(app.Config.Stripe.SecretKey)
	} else {
		gateway = providers.NewUnconfiguredGateway()
	}
	verifier := providers.NewStripeWebhookVerifier(app.Config.Stripe.WebhookSecret)

	// --- Services ---
	connectURLs := service.ConnectURLs{
		RefreshURL: app.Config.Stripe.ConnectRefreshURL,
		ReturnURL:  app.Config.Stripe.ConnectReturnURL,
	}
	connectSvc := service.NewConnectService(gateway, connectURLs, app.Logger, app.Metrics)
	paymentSvc := service.NewPaymentService(gateway, app.Logger, app.Metrics)
	webhookSvc := service.NewWebhookService(verifier, app.Logger, app.Metrics)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		ConnectService: connectSvc,
		PaymentService: paymentSvc,
		WebhookService: webhookSvc,
		Metrics:        app.Metrics,
		CORSConfig:     app.Config.Server.CORS,
		EnableTracing:  app.Config.Observability.EnableTracing,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		case <-quit:
			app.Logger.Info().Msg("Shutting down server...")
		}

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
		defer cancelShutdown()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("Server forced to shutdown")
		}
		cancel()
		return nil
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		app.Logger.Fatal().Err(err).Msg("Server error")
	}
	app.Logger.Info().Msg("Server exited")
}
