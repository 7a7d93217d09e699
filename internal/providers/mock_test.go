package providers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGateway_CreateAccount(t *testing.T) {
	g := NewMockGateway()

	acct, err := g.CreateAccount(context.Background(), CreateAccountRequest{
		Email:   "band@example.com",
		Country: "US",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(acct.ID, "acct_mock_"))
	assert.False(t, acct.ChargesEnabled)
	assert.False(t, acct.DetailsSubmitted)
}

func TestMockGateway_GetAccount_AfterOnboarding(t *testing.T) {
	g := NewMockGateway()

	acct, err := g.CreateAccount(context.Background(), CreateAccountRequest{Email: "band@example.com"})
	require.NoError(t, err)

	g.EnableAccount(acct.ID)

	got, err := g.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, got.ChargesEnabled)
	assert.True(t, got.PayoutsEnabled)
	assert.True(t, got.DetailsSubmitted)
}

func TestMockGateway_GetAccount_Unknown(t *testing.T) {
	g := NewMockGateway()

	_, err := g.GetAccount(context.Background(), "acct_missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such account")
}

func TestMockGateway_AlwaysFails(t *testing.T) {
	g := NewMockGateway(WithFailureRate(1.0))

	_, err := g.CreateAccount(context.Background(), CreateAccountRequest{Email: "x@y.z"})
	assert.Error(t, err)

	_, err = g.CreatePaymentIntent(context.Background(), CreatePaymentIntentRequest{AmountCents: 100})
	assert.Error(t, err)
}

func TestMockGateway_RespectsContextCancellation(t *testing.T) {
	g := NewMockGateway(WithLatency(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.CreateLoginLink(ctx, "acct_1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockGateway_PaymentIntentShape(t *testing.T) {
	g := NewMockGateway()

	pi, err := g.CreatePaymentIntent(context.Background(), CreatePaymentIntentRequest{
		AmountCents:          10000,
		Currency:             "usd",
		ApplicationFeeCents:  500,
		DestinationAccountID: "acct_1",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(pi.ID, "pi_mock_"))
	assert.Contains(t, pi.ClientSecret, "_secret_")
}
