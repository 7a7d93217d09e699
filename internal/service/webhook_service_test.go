package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/crowdfuel/backend/internal/providers"
	"github.com/crowdfuel/backend/internal/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func verifierReturning(event *providers.Event) *testutil.MockWebhookVerifier {
	return &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			return event, nil
		},
	}
}

func TestWebhookService_Process_InvalidSignature(t *testing.T) {
	verifier := &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			return nil, errors.New("webhook signature verification failed")
		},
	}
	svc := NewWebhookService(verifier, zerolog.Nop(), testMetrics())

	err := svc.Process([]byte(`{}`), "bad-signature")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "signature verification failed")
}

func TestWebhookService_Process_UnhandledType(t *testing.T) {
	svc := NewWebhookService(verifierReturning(&providers.Event{
		ID:   "evt_1",
		Type: "charge.refunded",
		Raw:  json.RawMessage(`{}`),
	}), zerolog.Nop(), testMetrics())

	err := svc.Process([]byte(`{}`), "sig")
	assert.NoError(t, err)
}

func TestWebhookService_Process_KnownTypes(t *testing.T) {
	tests := []struct {
		eventType string
		raw       string
	}{
		{"payment_intent.succeeded", `{"id":"pi_1","application_fee_amount":500,"transfer_data":{"destination":"acct_1"}}`},
		{"payment_intent.payment_failed", `{"id":"pi_2"}`},
		{"account.updated", `{"id":"acct_1","charges_enabled":true,"payouts_enabled":true}`},
		{"transfer.created", `{"id":"tr_1","amount":9500,"destination":"acct_1"}`},
		{"payout.paid", `{"id":"po_1","amount":9500}`},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			svc := NewWebhookService(verifierReturning(&providers.Event{
				ID:   "evt_x",
				Type: tt.eventType,
				Raw:  json.RawMessage(tt.raw),
			}), zerolog.Nop(), testMetrics())

			err := svc.Process([]byte(tt.raw), "sig")
			assert.NoError(t, err)
		})
	}
}

func TestWebhookService_Process_HandlerErrorStillAcknowledges(t *testing.T) {
	// Malformed payload for a known type must not bubble up after the
	// signature checked out.
	svc := NewWebhookService(verifierReturning(&providers.Event{
		ID:   "evt_1",
		Type: "payment_intent.succeeded",
		Raw:  json.RawMessage(`not-json`),
	}), zerolog.Nop(), testMetrics())

	err := svc.Process([]byte(`not-json`), "sig")
	assert.NoError(t, err)
}

func TestWebhookService_Register_ExtendsDispatch(t *testing.T) {
	svc := NewWebhookService(verifierReturning(&providers.Event{
		ID:   "evt_1",
		Type: "charge.refunded",
		Raw:  json.RawMessage(`{"id":"ch_1"}`),
	}), zerolog.Nop(), testMetrics())

	var seen string
	svc.Register("charge.refunded", func(event *providers.Event) error {
		var payload struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(event.Raw, &payload); err != nil {
			return err
		}
		seen = payload.ID
		return nil
	})

	err := svc.Process([]byte(`{}`), "sig")
	require.NoError(t, err)
	assert.Equal(t, "ch_1", seen)
}
