package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/crowdfuel/backend/internal/providers"
	"github.com/crowdfuel/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doSignedWebhook(t *testing.T, router http.Handler, body, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Stripe-Signature", signature)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_InvalidSignature(t *testing.T) {
	verifier := &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			return nil, errors.New("webhook signature verification failed: no valid signature")
		},
	}
	router := newTestRouter(&testutil.MockConnectGateway{}, verifier)

	rec := doJSON(t, router, http.MethodPost, "/webhook", `{"id":"evt_1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Contains(t, resp.Error, "signature verification failed")
}

func TestWebhook_ValidSignature_KnownType(t *testing.T) {
	verifier := &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			assert.Equal(t, "t=1,v1=abc", signature)
			return &providers.Event{
				ID:   "evt_1",
				Type: "payment_intent.succeeded",
				Raw:  json.RawMessage(`{"id":"pi_1","application_fee_amount":500,"transfer_data":{"destination":"acct_1"}}`),
			}, nil
		},
	}
	router := newTestRouter(&testutil.MockConnectGateway{}, verifier)

	rec := doSignedWebhook(t, router, `{"id":"evt_1","type":"payment_intent.succeeded"}`, "t=1,v1=abc")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestWebhook_ValidSignature_UnhandledType(t *testing.T) {
	verifier := &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			return &providers.Event{
				ID:   "evt_2",
				Type: "invoice.finalized",
				Raw:  json.RawMessage(`{}`),
			}, nil
		},
	}
	router := newTestRouter(&testutil.MockConnectGateway{}, verifier)

	rec := doJSON(t, router, http.MethodPost, "/webhook", `{"id":"evt_2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestWebhook_RawBodyReachesVerifierUntouched(t *testing.T) {
	// Whitespace and field order must survive: the verifier needs the exact
	// bytes Stripe signed, not a re-encoded JSON document.
	raw := "{\n  \"type\": \"payout.paid\",  \"id\": \"evt_3\"\n}"

	var seen []byte
	verifier := &testutil.MockWebhookVerifier{
		VerifyAndParseFunc: func(payload []byte, signature string) (*providers.Event, error) {
			seen = payload
			return &providers.Event{ID: "evt_3", Type: "payout.paid", Raw: json.RawMessage(`{"id":"po_1","amount":1}`)}, nil
		},
	}
	router := newTestRouter(&testutil.MockConnectGateway{}, verifier)

	rec := doJSON(t, router, http.MethodPost, "/webhook", raw)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, raw, string(seen))
}
