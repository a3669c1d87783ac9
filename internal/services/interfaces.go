package services

import (
	"context"

	"eventgate/internal/models"
)

// RegistrationServiceInterface defines the interface for registration submission
type RegistrationServiceInterface interface {
	Create(ctx context.Context, userID int, details []models.RegistrationDetail) (*models.Registration, error)
}

// PaymentServiceInterface defines the interface for payment session operations
type PaymentServiceInterface interface {
	CreateCheckoutSession(ctx context.Context, registrationID, amount int) (*models.CheckoutSession, error)
	VerifyCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSessionStatus, error)
}

// EventServiceInterface defines the interface for event browsing
type EventServiceInterface interface {
	ListEvents(ctx context.Context) ([]*models.Event, error)
	GetEventByID(ctx context.Context, id int) (*models.Event, error)
	GetTicketTypesByEventID(ctx context.Context, eventID int) ([]*models.TicketType, error)
}

// ContactServiceInterface defines the interface for contact form submission
type ContactServiceInterface interface {
	CreateContact(ctx context.Context, req *ContactRequest) error
}
