package service

import (
	"context"

	"github.com/crowdfuel/backend/internal/domain/fee"
	"github.com/crowdfuel/backend/internal/infrastructure/observability"
	"github.com/crowdfuel/backend/internal/providers"
	"github.com/rs/zerolog"
)

const defaultCurrency = "usd"

// PaymentService creates destination-charge payment intents with the
// platform's fee split applied.
type PaymentService struct {
	gateway providers.ConnectGateway
	logger  zerolog.Logger
	metrics *observability.Metrics
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(gateway providers.ConnectGateway, logger zerolog.Logger, metrics *observability.Metrics) *PaymentService {
	return &PaymentService{
		gateway: gateway,
		logger:  logger,
		metrics: metrics,
	}
}

// CreatePaymentIntentRequest holds the input for creating a payment intent.
type CreatePaymentIntentRequest struct {
	AmountCents          int64
	Currency             string
	DestinationAccountID string
	Description          string
}

// CreatePaymentIntentResult holds the output of creating a payment intent.
type CreatePaymentIntentResult struct {
	ClientSecret    string
	PaymentIntentID string
	PlatformFee     int64
	BandAmount      int64
}

// CreatePaymentIntent splits the amount into platform fee and band share,
// then creates the intent with a transfer to the band's account.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*CreatePaymentIntentResult, error) {
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	platformFee, bandAmount := fee.Split(req.AmountCents)

	pi, err := s.gateway.CreatePaymentIntent(ctx, providers.CreatePaymentIntentRequest{
		AmountCents:          req.AmountCents,
		Currency:             currency,
		ApplicationFeeCents:  platformFee,
		DestinationAccountID: req.DestinationAccountID,
		Description:          req.Description,
	})
	if err != nil {
		s.metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.logger.Error().
			Err(err).
			Int64("amount_cents", req.AmountCents).
			Str("destination", req.DestinationAccountID).
			Msg("Failed to create payment intent")
		return nil, err
	}

	s.metrics.PaymentIntentsTotal.WithLabelValues("success").Inc()
	s.metrics.PaymentIntentAmounts.Observe(float64(req.AmountCents))
	s.metrics.PlatformFeesTotal.Add(float64(platformFee))

	s.logger.Info().
		Str("payment_intent_id", pi.ID).
		Int64("amount_cents", req.AmountCents).
		Int64("platform_fee_cents", platformFee).
		Int64("band_amount_cents", bandAmount).
		Str("destination", req.DestinationAccountID).
		Msg("Payment intent created")

	return &CreatePaymentIntentResult{
		ClientSecret:    pi.ClientSecret,
		PaymentIntentID: pi.ID,
		PlatformFee:     platformFee,
		BandAmount:      bandAmount,
	}, nil
}
