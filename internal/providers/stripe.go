package providers

import (
	"context"
	"strconv"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeGateway implements ConnectGateway using the Stripe SDK. The API
// client is held on the struct rather than set through the package-global
// key, so multiple instances (and test doubles) can coexist.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a gateway authenticated with the given secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// NewStripeGatewayWithAPI creates a gateway over a pre-configured API client.
// Useful for tests that point the SDK at a stub backend.
func NewStripeGatewayWithAPI(api *client.API) *StripeGateway {
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateAccount(ctx context.Context, req CreateAccountRequest) (*Account, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeExpress)),
		Email:        stripe.String(req.Email),
		Country:      stripe.String(req.Country),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{
				Requested: stripe.Bool(true),
			},
			Transfers: &stripe.AccountCapabilitiesTransfersParams{
				Requested: stripe.Bool(true),
			},
		},
	}
	params.Context = ctx

	acct, err := g.api.Accounts.New(params)
	if err != nil {
		return nil, err
	}
	return fromStripeAccount(acct), nil
}

func (g *StripeGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*AccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String(string(stripe.AccountLinkTypeAccountOnboarding)),
	}
	params.Context = ctx

	link, err := g.api.AccountLinks.New(params)
	if err != nil {
		return nil, err
	}
	return &AccountLink{URL: link.URL}, nil
}

func (g *StripeGateway) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := g.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, err
	}
	return fromStripeAccount(acct), nil
}

func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req CreatePaymentIntentRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:               stripe.Int64(req.AmountCents),
		Currency:             stripe.String(req.Currency),
		ApplicationFeeAmount: stripe.Int64(req.ApplicationFeeCents),
		TransferData: &stripe.PaymentIntentTransferDataParams{
			Destination: stripe.String(req.DestinationAccountID),
		},
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	// Recorded so fee splits stay auditable from the Stripe dashboard.
	params.AddMetadata("band_account_id", req.DestinationAccountID)
	params.AddMetadata("platform_fee_cents", strconv.FormatInt(req.ApplicationFeeCents, 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

func (g *StripeGateway) CreateLoginLink(ctx context.Context, accountID string) (*LoginLink, error) {
	params := &stripe.LoginLinkParams{
		Account: stripe.String(accountID),
	}
	params.Context = ctx

	link, err := g.api.LoginLinks.New(params)
	if err != nil {
		return nil, err
	}
	return &LoginLink{URL: link.URL}, nil
}

func fromStripeAccount(acct *stripe.Account) *Account {
	return &Account{
		ID:               acct.ID,
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}
}
