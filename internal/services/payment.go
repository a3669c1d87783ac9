package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"eventgate/internal/models"
)

// PaymentService talks to the backend's payment integration. It creates
// checkout sessions for registrations and verifies session outcomes when the
// browser returns from the provider.
type PaymentService struct {
	api        *apiClient
	successURL string
	cancelURL  string
}

// NewPaymentService creates a new payment service
func NewPaymentService(baseURL string, timeout time.Duration) *PaymentService {
	return &PaymentService{
		api: newAPIClient(baseURL, timeout),
	}
}

// SetReturnURLs sets the URLs the provider sends the browser back to after
// payment. When unset, the backend's configured defaults apply.
func (s *PaymentService) SetReturnURLs(successURL, cancelURL string) {
	s.successURL = successURL
	s.cancelURL = cancelURL
}

// CreateCheckoutSession requests a payment session for a registration. The
// amount is the cart-snapshot total in cents, the same figure the user was
// shown. A response without a redirect URL is a hard failure: the checkout
// attempt cannot proceed without somewhere to send the user.
func (s *PaymentService) CreateCheckoutSession(ctx context.Context, registrationID, amount int) (*models.CheckoutSession, error) {
	req := &models.CheckoutSessionCreateRequest{
		RegistrationID: registrationID,
		Amount:         amount,
		SuccessURL:     s.successURL,
		CancelURL:      s.cancelURL,
	}

	var session models.CheckoutSession
	if err := s.api.postJSON(ctx, "/payment/create-checkout-session", req, &session, http.StatusOK); err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	if session.RedirectURL == "" {
		return nil, ErrMissingRedirectURL
	}

	return &session, nil
}

// VerifyCheckoutSession asks the backend whether a session was actually paid.
// The return redirect's query parameters are client-supplied and cannot be
// trusted on their own; this is the authoritative check before the cart is
// cleared.
func (s *PaymentService) VerifyCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSessionStatus, error) {
	var status models.CheckoutSessionStatus
	path := "/payment/checkout-session/" + url.PathEscape(sessionID)
	if err := s.api.getJSON(ctx, path, &status); err != nil {
		return nil, fmt.Errorf("failed to verify checkout session: %w", err)
	}

	return &status, nil
}
