package service

import (
	"context"
	"net/url"

	"github.com/crowdfuel/backend/internal/infrastructure/observability"
	"github.com/crowdfuel/backend/internal/providers"
	"github.com/rs/zerolog"
)

const defaultCountry = "US"

// ConnectURLs are the onboarding redirect targets, loaded from config.
type ConnectURLs struct {
	RefreshURL string
	ReturnURL  string
}

// ConnectService handles merchant sub-account onboarding and status.
type ConnectService struct {
	gateway providers.ConnectGateway
	urls    ConnectURLs
	logger  zerolog.Logger
	metrics *observability.Metrics
}

// NewConnectService creates a new ConnectService.
func NewConnectService(gateway providers.ConnectGateway, urls ConnectURLs, logger zerolog.Logger, metrics *observability.Metrics) *ConnectService {
	return &ConnectService{
		gateway: gateway,
		urls:    urls,
		logger:  logger,
		metrics: metrics,
	}
}

// ConnectAccountResult holds the output of creating a connect account.
type ConnectAccountResult struct {
	AccountID     string
	OnboardingURL string
}

// CreateConnectAccount creates an Express account for a band and returns an
// onboarding link whose return URL carries the new account id and the band id,
// so the mobile client can persist the association after onboarding.
func (s *ConnectService) CreateConnectAccount(ctx context.Context, bandID, email, country string) (*ConnectAccountResult, error) {
	if country == "" {
		country = defaultCountry
	}

	acct, err := s.gateway.CreateAccount(ctx, providers.CreateAccountRequest{
		Email:   email,
		Country: country,
	})
	if err != nil {
		s.metrics.ConnectAccountsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("band_id", bandID).Msg("Failed to create connect account")
		return nil, err
	}

	link, err := s.gateway.CreateAccountLink(ctx, acct.ID, s.urls.RefreshURL, s.returnURLFor(acct.ID, bandID))
	if err != nil {
		s.metrics.ConnectAccountsTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("band_id", bandID).Str("account_id", acct.ID).Msg("Failed to create onboarding link")
		return nil, err
	}

	s.metrics.ConnectAccountsTotal.WithLabelValues("success").Inc()
	s.logger.Info().
		Str("band_id", bandID).
		Str("account_id", acct.ID).
		Msg("Connect account created")

	return &ConnectAccountResult{
		AccountID:     acct.ID,
		OnboardingURL: link.URL,
	}, nil
}

// AccountStatus holds an account's capability flags as reported by Stripe.
type AccountStatus struct {
	ChargesEnabled   bool
	PayoutsEnabled   bool
	DetailsSubmitted bool
}

// GetAccountStatus retrieves the current capability flags for an account.
func (s *ConnectService) GetAccountStatus(ctx context.Context, accountID string) (*AccountStatus, error) {
	acct, err := s.gateway.GetAccount(ctx, accountID)
	if err != nil {
		s.metrics.AccountStatusLookups.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("account_id", accountID).Msg("Failed to fetch account status")
		return nil, err
	}

	s.metrics.AccountStatusLookups.WithLabelValues("success").Inc()
	return &AccountStatus{
		ChargesEnabled:   acct.ChargesEnabled,
		PayoutsEnabled:   acct.PayoutsEnabled,
		DetailsSubmitted: acct.DetailsSubmitted,
	}, nil
}

// CreateDashboardLink creates a one-time login link to the band's payout dashboard.
func (s *ConnectService) CreateDashboardLink(ctx context.Context, accountID string) (string, error) {
	link, err := s.gateway.CreateLoginLink(ctx, accountID)
	if err != nil {
		s.metrics.DashboardLinksTotal.WithLabelValues("error").Inc()
		s.logger.Error().Err(err).Str("account_id", accountID).Msg("Failed to create dashboard link")
		return "", err
	}

	s.metrics.DashboardLinksTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", accountID).Msg("Dashboard login link created")
	return link.URL, nil
}

func (s *ConnectService) returnURLFor(accountID, bandID string) string {
	q := url.Values{}
	q.Set("accountId", accountID)
	q.Set("bandId", bandID)

	u, err := url.Parse(s.urls.ReturnURL)
	if err != nil {
		// Config validation keeps this from happening; fall back to naive append.
		return s.urls.ReturnURL + "?" + q.Encode()
	}
	u.RawQuery = q.Encode()
	return u.String()
}
