package controller

// --- Request DTOs ---
// Field names mirror the mobile client's JSON exactly (camelCase). Validation
// tags cover required-field presence; requests never reach the gateway when
// validation fails.

// CreateConnectAccountRequest holds the input for onboarding a band.
type CreateConnectAccountRequest struct {
	BandID  string `json:"bandId" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Country string `json:"country"`
}

// AccountStatusRequest holds the input for the status and dashboard-link routes.
type AccountStatusRequest struct {
	AccountID string `json:"accountId" validate:"required"`
}

// CreatePaymentIntentRequest holds the input for creating a payment intent.
// Amount is in minor units. A zero amount is rejected as missing.
type CreatePaymentIntentRequest struct {
	Amount              int64  `json:"amount" validate:"required"`
	Currency            string `json:"currency"`
	BandStripeAccountID string `json:"bandStripeAccountId" validate:"required"`
	Description         string `json:"description"`
}

// --- Response DTOs ---

// ConnectAccountResponse is returned after creating a connect account.
type ConnectAccountResponse struct {
	AccountID     string `json:"accountId"`
	OnboardingURL string `json:"onboardingUrl"`
}

// AccountStatusResponse mirrors the account's capability flags.
type AccountStatusResponse struct {
	ChargesEnabled   bool `json:"chargesEnabled"`
	PayoutsEnabled   bool `json:"payoutsEnabled"`
	DetailsSubmitted bool `json:"detailsSubmitted"`
}

// PaymentIntentResponse is returned after creating a payment intent.
type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	PlatformFee     int64  `json:"platformFee"`
	BandAmount      int64  `json:"bandAmount"`
}

// DashboardLinkResponse carries a one-time payout dashboard login URL.
type DashboardLinkResponse struct {
	URL string `json:"url"`
}

// HealthResponse is the root health-check body.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// WebhookAckResponse acknowledges a verified webhook delivery.
type WebhookAckResponse struct {
	Received bool `json:"received"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
