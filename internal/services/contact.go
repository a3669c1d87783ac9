package services

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// ContactRequest is a support message submitted through the contact form
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService forwards support messages to the backend
type ContactService struct {
	api *apiClient
}

// NewContactService creates a new contact service
func NewContactService(baseURL string, timeout time.Duration) *ContactService {
	return &ContactService{
		api: newAPIClient(baseURL, timeout),
	}
}

// CreateContact submits a contact message
func (s *ContactService) CreateContact(ctx context.Context, req *ContactRequest) error {
	if err := s.api.postJSON(ctx, "/contacts", req, nil, http.StatusCreated); err != nil {
		return fmt.Errorf("failed to submit contact message: %w", err)
	}
	return nil
}
