// Package providers wraps the external payment platform behind a narrow
// gateway interface so handlers and services never touch the vendor SDK
// directly and tests can substitute a double.
package providers

import (
	"context"
	"encoding/json"
)

// Account mirrors the subset of a Stripe Connect account the service exposes.
type Account struct {
	ID               string
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// AccountLink is a time-limited onboarding URL for a connect account.
type AccountLink struct {
	URL string
}

// LoginLink is a one-time login URL for a connect account's Express dashboard.
type LoginLink struct {
	URL string
}

// PaymentIntent carries the fields the mobile client needs to confirm a charge.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// CreateAccountRequest holds the input for creating a connect account.
type CreateAccountRequest struct {
	Email   string
	Country string
}

// CreatePaymentIntentRequest holds the input for creating a destination charge.
type CreatePaymentIntentRequest struct {
	AmountCents          int64
	Currency             string
	ApplicationFeeCents  int64
	DestinationAccountID string
	Description          string
}

// ConnectGateway is the facade over the payment platform's connect operations.
// Every method is a single external call: no retries, no circuit breaking,
// no local state.
type ConnectGateway interface {
	// CreateAccount creates an Express merchant sub-account.
	CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error)
	// CreateAccountLink creates an onboarding link for the account.
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error)
	// GetAccount retrieves the account's current capability flags.
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	// CreatePaymentIntent creates a payment intent with a destination transfer
	// and an application fee.
	CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntent, error)
	// CreateLoginLink creates a one-time Express dashboard login link.
	CreateLoginLink(ctx context.Context, accountID string) (*LoginLink, error)
}

// Event is a verified webhook event, decoupled from the vendor SDK's type.
type Event struct {
	ID   string
	Type string
	Raw  json.RawMessage
}

// WebhookVerifier checks a raw webhook payload against its signature header
// and returns the parsed event on success.
type WebhookVerifier interface {
	VerifyAndParse(payload []byte, signature string) (*Event, error)
}
