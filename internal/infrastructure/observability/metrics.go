package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all application metrics
type Metrics struct {
	// Connect onboarding metrics
	ConnectAccountsTotal *prometheus.CounterVec
	AccountStatusLookups *prometheus.CounterVec
	DashboardLinksTotal  *prometheus.CounterVec

	// Payment intent metrics
	PaymentIntentsTotal  *prometheus.CounterVec
	PaymentIntentAmounts prometheus.Histogram
	PlatformFeesTotal    prometheus.Counter

	// Webhook metrics
	WebhookEventsTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers all metrics against the given registry.
// If reg is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := prometheus.WrapRegistererWith(nil, reg)

	m := &Metrics{
		ConnectAccountsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "connect_accounts_total",
				Help:      "Total number of connect account creation attempts by status",
			},
			[]string{"status"},
		),
		AccountStatusLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "account_status_lookups_total",
				Help:      "Total number of connect account status lookups by status",
			},
			[]string{"status"},
		),
		DashboardLinksTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dashboard_links_total",
				Help:      "Total number of payout dashboard login links by status",
			},
			[]string{"status"},
		),
		PaymentIntentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payment_intents_total",
				Help:      "Total number of payment intent creation attempts by status",
			},
			[]string{"status"},
		),
		PaymentIntentAmounts: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "payment_intent_amount_cents",
				Help:      "Distribution of payment intent amounts in minor units",
				Buckets:   []float64{100, 500, 1000, 2500, 5000, 10000, 25000, 50000, 100000},
			},
		),
		PlatformFeesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "platform_fees_cents_total",
				Help:      "Cumulative platform fees attached to payment intents, in minor units",
			},
		),
		WebhookEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "webhook_events_total",
				Help:      "Total number of webhook events by type and outcome",
			},
			[]string{"type", "status"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	// Register all collectors
	factory.MustRegister(
		m.ConnectAccountsTotal,
		m.AccountStatusLookups,
		m.DashboardLinksTotal,
		m.PaymentIntentsTotal,
		m.PaymentIntentAmounts,
		m.PlatformFeesTotal,
		m.WebhookEventsTotal,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}
