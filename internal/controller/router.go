package controller

import (
	"time"

	"github.com/crowdfuel/backend/internal/infrastructure/config"
	"github.com/crowdfuel/backend/internal/infrastructure/observability"
	customMW "github.com/crowdfuel/backend/internal/middleware"
	"github.com/crowdfuel/backend/internal/service"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	ConnectService *service.ConnectService
	PaymentService *service.PaymentService
	WebhookService *service.WebhookService
	Metrics        *observability.Metrics
	CORSConfig     config.CORSConfig
	EnableTracing  bool
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	if deps.EnableTracing {
		r.Use(customMW.Tracing())
	}
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Stripe-Signature"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))
	r.Use(customMW.SecurityHeaders())
	r.Use(customMW.Metrics(deps.Metrics))

	healthH := NewHealthController()
	connectH := NewConnectController(deps.ConnectService)
	paymentH := NewPaymentController(deps.PaymentService)
	webhookH := NewWebhookController(deps.WebhookService)

	r.Get("/", healthH.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/create-connect-account", connectH.CreateAccount)
	r.Post("/connect-account-status", connectH.AccountStatus)
	r.Post("/payout-dashboard-link", connectH.DashboardLink)
	r.Post("/create-payment-intent", paymentH.CreatePaymentIntent)
	r.Post("/webhook", webhookH.Handle)

	return r
}
