package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eventgate/internal/models"
)

// RegistrationService creates registrations on the backend from cart
// snapshots.
//
// Create is NOT idempotent: every successful call creates one more
// registration record on the backend. Callers must not retry automatically
// and must guard against concurrent submission; the checkout orchestrator is
// the only caller and enforces both.
type RegistrationService struct {
	api *apiClient
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(baseURL string, timeout time.Duration) *RegistrationService {
	return &RegistrationService{
		api: newAPIClient(baseURL, timeout),
	}
}

// Create submits a registration for the given user and ticket selection and
// returns the backend-issued registration. Details are a snapshot taken from
// the cart, not a live reference.
func (s *RegistrationService) Create(ctx context.Context, userID int, details []models.RegistrationDetail) (*models.Registration, error) {
	req := &models.RegistrationCreateRequest{
		UserID:              userID,
		RegistrationDetails: details,
	}

	var registration models.Registration
	if err := s.api.postJSON(ctx, "/registrations", req, &registration, http.StatusCreated); err != nil {
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if registration.ID == 0 {
		return nil, fmt.Errorf("backend returned no registration ID")
	}

	return &registration, nil
}
