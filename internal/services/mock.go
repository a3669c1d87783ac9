package services

import (
	"context"

	"eventgate/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockRegistrationService is a mock implementation of RegistrationServiceInterface
type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Create(ctx context.Context, userID int, details []models.RegistrationDetail) (*models.Registration, error) {
	args := m.Called(ctx, userID, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Registration), args.Error(1)
}

// MockPaymentService is a mock implementation of PaymentServiceInterface
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateCheckoutSession(ctx context.Context, registrationID, amount int) (*models.CheckoutSession, error) {
	args := m.Called(ctx, registrationID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutSession), args.Error(1)
}

func (m *MockPaymentService) VerifyCheckoutSession(ctx context.Context, sessionID string) (*models.CheckoutSessionStatus, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CheckoutSessionStatus), args.Error(1)
}

// MockEventService is a mock implementation of EventServiceInterface
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

func (m *MockEventService) GetEventByID(ctx context.Context, id int) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventService) GetTicketTypesByEventID(ctx context.Context, eventID int) ([]*models.TicketType, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TicketType), args.Error(1)
}

// MockContactService is a mock implementation of ContactServiceInterface
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, req *ContactRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
