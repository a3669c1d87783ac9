package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventgate/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentServiceCreateCheckoutSession(t *testing.T) {
	var received models.CheckoutSessionCreateRequest

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payment/create-checkout-session", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"sessionId": "sess_1",
			"url":       "https://pay.example/sess_1",
		})
	}))
	defer backend.Close()

	service := NewPaymentService(backend.URL, 5*time.Second)
	session, err := service.CreateCheckoutSession(context.Background(), 42, 30000)

	require.NoError(t, err)
	assert.Equal(t, "sess_1", session.SessionID)
	assert.Equal(t, "https://pay.example/sess_1", session.RedirectURL)
	assert.Equal(t, 42, received.RegistrationID)
	assert.Equal(t, 30000, received.Amount)
}

func TestPaymentServiceCreateCheckoutSessionReturnURLs(t *testing.T) {
	var received models.CheckoutSessionCreateRequest

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]string{
			"sessionId": "sess_1",
			"url":       "https://pay.example/sess_1",
		})
	}))
	defer backend.Close()

	service := NewPaymentService(backend.URL, 5*time.Second)
	service.SetReturnURLs("https://app.example/payment/success", "https://app.example/payment/cancelled")

	_, err := service.CreateCheckoutSession(context.Background(), 42, 30000)

	require.NoError(t, err)
	assert.Equal(t, "https://app.example/payment/success", received.SuccessURL)
	assert.Equal(t, "https://app.example/payment/cancelled", received.CancelURL)
}

func TestPaymentServiceCreateCheckoutSessionMissingURL(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 without a usable redirect URL is still a hard failure
		json.NewEncoder(w).Encode(map[string]string{"sessionId": "sess_1"})
	}))
	defer backend.Close()

	service := NewPaymentService(backend.URL, 5*time.Second)
	session, err := service.CreateCheckoutSession(context.Background(), 42, 30000)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, ErrMissingRedirectURL)
}

func TestPaymentServiceCreateCheckoutSessionBackendError(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"provider unavailable"}`))
	}))
	defer backend.Close()

	service := NewPaymentService(backend.URL, 5*time.Second)
	session, err := service.CreateCheckoutSession(context.Background(), 42, 30000)

	assert.Nil(t, session)
	var sErr *ServerError
	require.ErrorAs(t, err, &sErr)
	assert.Equal(t, http.StatusBadGateway, sErr.StatusCode)
}

func TestPaymentServiceVerifyCheckoutSession(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantPaid bool
	}{
		{name: "paid session", status: "paid", wantPaid: true},
		{name: "unpaid session", status: "unpaid", wantPaid: false},
		{name: "pending session", status: "pending", wantPaid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/payment/checkout-session/sess_1", r.URL.Path)
				json.NewEncoder(w).Encode(models.CheckoutSessionStatus{
					SessionID:      "sess_1",
					RegistrationID: 42,
					PaymentStatus:  tt.status,
				})
			}))
			defer backend.Close()

			service := NewPaymentService(backend.URL, 5*time.Second)
			status, err := service.VerifyCheckoutSession(context.Background(), "sess_1")

			require.NoError(t, err)
			assert.Equal(t, 42, status.RegistrationID)
			assert.Equal(t, tt.wantPaid, status.IsPaid())
		})
	}
}
