package testutil

import (
	"context"
	"errors"

	"github.com/crowdfuel/backend/internal/providers"
)

// --- Connect Gateway Mock ---

// MockConnectGateway is a Func-field mock of providers.ConnectGateway.
// Unset funcs fail loudly so a test cannot silently reach the gateway.
type MockConnectGateway struct {
	CreateAccountFunc       func(ctx context.Context, req providers.CreateAccountRequest) (*providers.Account, error)
	CreateAccountLinkFunc   func(ctx context.Context, accountID, refreshURL, returnURL string) (*providers.AccountLink, error)
	GetAccountFunc          func(ctx context.Context, accountID string) (*providers.Account, error)
	CreatePaymentIntentFunc func(ctx context.Context, req providers.CreatePaymentIntentRequest) (*providers.PaymentIntent, error)
	CreateLoginLinkFunc     func(ctx context.Context, accountID string) (*providers.LoginLink, error)

	CreateAccountCalls       int
	CreateAccountLinkCalls   int
	GetAccountCalls          int
	CreatePaymentIntentCalls int
	CreateLoginLinkCalls     int
}

var errMockNotConfigured = errors.New("mock gateway call not configured")

func (m *MockConnectGateway) CreateAccount(ctx context.Context, req providers.CreateAccountRequest) (*providers.Account, error) {
	m.CreateAccountCalls++
	if m.CreateAccountFunc != nil {
		return m.CreateAccountFunc(ctx, req)
	}
	return nil, errMockNotConfigured
}

func (m *MockConnectGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*providers.AccountLink, error) {
	m.CreateAccountLinkCalls++
	if m.CreateAccountLinkFunc != nil {
		return m.CreateAccountLinkFunc(ctx, accountID, refreshURL, returnURL)
	}
	return nil, errMockNotConfigured
}

func (m *MockConnectGateway) GetAccount(ctx context.Context, accountID string) (*providers.Account, error) {
	m.GetAccountCalls++
	if m.GetAccountFunc != nil {
		return m.GetAccountFunc(ctx, accountID)
	}
	return nil, errMockNotConfigured
}

func (m *MockConnectGateway) CreatePaymentIntent(ctx context.Context, req providers.CreatePaymentIntentRequest) (*providers.PaymentIntent, error) {
	m.CreatePaymentIntentCalls++
	if m.CreatePaymentIntentFunc != nil {
		return m.CreatePaymentIntentFunc(ctx, req)
	}
	return nil, errMockNotConfigured
}

func (m *MockConnectGateway) CreateLoginLink(ctx context.Context, accountID string) (*providers.LoginLink, error) {
	m.CreateLoginLinkCalls++
	if m.CreateLoginLinkFunc != nil {
		return m.CreateLoginLinkFunc(ctx, accountID)
	}
	return nil, errMockNotConfigured
}

// --- Webhook Verifier Mock ---

// MockWebhookVerifier is a Func-field mock of providers.WebhookVerifier.
type MockWebhookVerifier struct {
	VerifyAndParseFunc func(payload []byte, signature string) (*providers.Event, error)
	Calls              int
}

func (m *MockWebhookVerifier) VerifyAndParse(payload []byte, signature string) (*providers.Event, error) {
	m.Calls++
	if m.VerifyAndParseFunc != nil {
		return m.VerifyAndParseFunc(payload, signature)
	}
	return nil, errors.New("mock verifier call not configured")
}
