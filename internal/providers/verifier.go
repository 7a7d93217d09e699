package providers

import (
	"fmt"

	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhookVerifier validates Stripe-Signature headers against the shared
// endpoint signing secret. Signature verification is the only authentication
// this endpoint has.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

func (v *StripeWebhookVerifier) VerifyAndParse(payload []byte, signature string) (*Event, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	return &Event{
		ID:   event.ID,
		Type: string(event.Type),
		Raw:  event.Data.Raw,
	}, nil
}
