package providers

import (
	"context"

	domainErrors "github.com/crowdfuel/backend/internal/domain/errors"
)

// UnconfiguredGateway stands in when no Stripe secret key is present. The
// process keeps serving the health check while every business call fails.
type UnconfiguredGateway struct{}

func NewUnconfiguredGateway() *UnconfiguredGateway {
	return &UnconfiguredGateway{}
}

func (g *UnconfiguredGateway) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	return nil, domainErrors.ErrGatewayNotConfigured
}

func (g *UnconfiguredGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error) {
	return nil, domainErrors.ErrGatewayNotConfigured
}

func (g *UnconfiguredGateway) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	return nil, domainErrors.ErrGatewayNotConfigured
}

func (g *UnconfiguredGateway) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntent, error) {
	return nil, domainErrors.ErrGatewayNotConfigured
}

func (g *UnconfiguredGateway) CreateLoginLink(ctx context.Context, accountID string) (*LoginLink, error) {
	return nil, domainErrors.ErrGatewayNotConfigured
}
