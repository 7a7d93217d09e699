package providers

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MockGateway is a configurable in-memory ConnectGateway used in tests and
// local development without Stripe credentials.
type MockGateway struct {
	mu          sync.Mutex
	failureRate float64 // 0.0 to 1.0
	latency     time.Duration
	accounts    map[string]*Account
}

type MockGatewayOption func(*MockGateway)

func WithFailureRate(rate float64) MockGatewayOption {
	return func(g *MockGateway) { g.failureRate = rate }
}

func WithLatency(d time.Duration) MockGatewayOption {
	return func(g *MockGateway) { g.latency = d }
}

func NewMockGateway(opts ...MockGatewayOption) *MockGateway {
	g := &MockGateway{
		failureRate: 0.0,
		latency:     0,
		accounts:    make(map[string]*Account),
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *MockGateway) simulate(ctx context.Context) error {
	if g.latency > 0 {
		select {
		case <-time.After(g.latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if rand.Float64() < g.failureRate {
		return errors.New("mock gateway: simulated provider failure")
	}
	return nil
}

func (g *MockGateway) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	if err := g.simulate(ctx); err != nil {
		return nil, err
	}

	acct := &Account{
		ID: fmt.Sprintf("acct_mock_%s", uuid.New().String()[:8]),
	}
	g.mu.Lock()
	g.accounts[acct.ID] = acct
	g.mu.Unlock()
	return acct, nil
}

func (g *MockGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error) {
	if err := g.simulate(ctx); err != nil {
		return nil, err
	}
	return &AccountLink{
		URL: fmt.Sprintf("https://connect.stripe.test/setup/%s", accountID),
	}, nil
}

func (g *MockGateway) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	if err := g.simulate(ctx); err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	acct, ok := g.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("mock gateway: no such account: %s", accountID)
	}
	return acct, nil
}

// EnableAccount flips all capability flags on, simulating completed onboarding.
func (g *MockGateway) EnableAccount(accountID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if acct, ok := g.accounts[accountID]; ok {
		acct.ChargesEnabled = true
		acct.PayoutsEnabled = true
		acct.DetailsSubmitted = true
	}
}

func (g *MockGateway) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntent, error) {
	if err := g.simulate(ctx); err != nil {
		return nil, err
	}

	id := fmt.Sprintf("pi_mock_%s", uuid.New().String()[:8])
	return &PaymentIntent{
		ID:           id,
		ClientSecret: id + "_secret_" + uuid.New().String()[:8],
	}, nil
}

func (g *MockGateway) CreateLoginLink(ctx context.Context, accountID string) (*LoginLink, error) {
	if err := g.simulate(ctx); err != nil {
		return nil, err
	}
	return &LoginLink{
		URL: fmt.Sprintf("https://connect.stripe.test/express/%s", accountID),
	}, nil
}
