package service

import (
	"encoding/json"

	"github.com/crowdfuel/backend/internal/infrastructure/observability"
	"github.com/crowdfuel/backend/internal/providers"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
)

// EventHandler processes one verified webhook event kind.
type EventHandler func(event *providers.Event) error

// WebhookService verifies signed events and dispatches them by type. The
// dispatch table is open for extension: new kinds register a handler instead
// of growing a conditional chain. All built-in handlers only log; delivery
// retries on failure are Stripe's responsibility, triggered by a non-2xx
// response before verification succeeds.
type WebhookService struct {
	verifier providers.WebhookVerifier
	logger   zerolog.Logger
	metrics  *observability.Metrics
	handlers map[string]EventHandler
}

// NewWebhookService creates a WebhookService with the default dispatch table.
func NewWebhookService(verifier providers.WebhookVerifier, logger zerolog.Logger, metrics *observability.Metrics) *WebhookService {
	s := &WebhookService{
		verifier: verifier,
		logger:   logger,
		metrics:  metrics,
	}
	s.handlers = map[string]EventHandler{
		string(stripe.EventTypePaymentIntentSucceeded):     s.onPaymentSucceeded,
		string(stripe.EventTypePaymentIntentPaymentFailed): s.onPaymentFailed,
		string(stripe.EventTypeAccountUpdated):             s.onAccountUpdated,
		string(stripe.EventTypeTransferCreated):            s.onTransferCreated,
		string(stripe.EventTypePayoutPaid):                 s.onPayoutPaid,
	}
	return s
}

// Register adds or replaces the handler for an event type.
func (s *WebhookService) Register(eventType string, h EventHandler) {
	s.handlers[eventType] = h
}

// Process verifies the payload and dispatches it. A returned error always
// means signature verification failed; once verification succeeds the event
// is acknowledged regardless of how the branch fares.
func (s *WebhookService) Process(payload []byte, signature string) error {
	event, err := s.verifier.VerifyAndParse(payload, signature)
	if err != nil {
		s.metrics.WebhookEventsTotal.WithLabelValues("unknown", "invalid_signature").Inc()
		return err
	}

	handler, ok := s.handlers[event.Type]
	if !ok {
		s.metrics.WebhookEventsTotal.WithLabelValues(event.Type, "unhandled").Inc()
		s.logger.Info().
			Str("event_id", event.ID).
			Str("type", event.Type).
			Msg("Unhandled webhook event type")
		return nil
	}

	if err := handler(event); err != nil {
		s.metrics.WebhookEventsTotal.WithLabelValues(event.Type, "error").Inc()
		s.logger.Error().
			Err(err).
			Str("event_id", event.ID).
			Str("type", event.Type).
			Msg("Webhook handler failed; acknowledging anyway")
		return nil
	}

	s.metrics.WebhookEventsTotal.WithLabelValues(event.Type, "processed").Inc()
	return nil
}

// Webhook payloads are decoded into minimal local shapes instead of the SDK's
// full object graph; expandable references like transfer_data.destination
// arrive as plain id strings on the wire.

type paymentIntentPayload struct {
	ID                   string `json:"id"`
	ApplicationFeeAmount int64  `json:"application_fee_amount"`
	TransferData         struct {
		Destination string `json:"destination"`
	} `json:"transfer_data"`
}

type accountPayload struct {
	ID             string `json:"id"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

type transferPayload struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Destination string `json:"destination"`
}

type payoutPayload struct {
	ID     string `json:"id"`
	Amount int64  `json:"amount"`
}

func (s *WebhookService) onPaymentSucceeded(event *providers.Event) error {
	var pi paymentIntentPayload
	if err := json.Unmarshal(event.Raw, &pi); err != nil {
		return err
	}
	s.logger.Info().
		Str("payment_intent_id", pi.ID).
		Int64("application_fee_cents", pi.ApplicationFeeAmount).
		Str("destination", pi.TransferData.Destination).
		Msg("Payment succeeded")
	return nil
}

func (s *WebhookService) onPaymentFailed(event *providers.Event) error {
	var pi paymentIntentPayload
	if err := json.Unmarshal(event.Raw, &pi); err != nil {
		return err
	}
	s.logger.Warn().
		Str("payment_intent_id", pi.ID).
		Msg("Payment failed")
	return nil
}

func (s *WebhookService) onAccountUpdated(event *providers.Event) error {
	var acct accountPayload
	if err := json.Unmarshal(event.Raw, &acct); err != nil {
		return err
	}
	s.logger.Info().
		Str("account_id", acct.ID).
		Bool("charges_enabled", acct.ChargesEnabled).
		Bool("payouts_enabled", acct.PayoutsEnabled).
		Msg("Connect account updated")
	return nil
}

func (s *WebhookService) onTransferCreated(event *providers.Event) error {
	var tr transferPayload
	if err := json.Unmarshal(event.Raw, &tr); err != nil {
		return err
	}
	s.logger.Info().
		Str("transfer_id", tr.ID).
		Int64("amount_cents", tr.Amount).
		Str("destination", tr.Destination).
		Msg("Transfer created")
	return nil
}

func (s *WebhookService) onPayoutPaid(event *providers.Event) error {
	var po payoutPayload
	if err := json.Unmarshal(event.Raw, &po); err != nil {
		return err
	}
	s.logger.Info().
		Str("payout_id", po.ID).
		Int64("amount_cents", po.Amount).
		Msg("Payout completed")
	return nil
}
