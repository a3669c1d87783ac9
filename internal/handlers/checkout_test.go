package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"eventgate/internal/checkout"
	"eventgate/internal/models"
	"eventgate/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProcessCheckout(t *testing.T) {
	t.Run("empty cart redirects back without network calls", func(t *testing.T) {
		carts, _ := newTestCartStore()
		registrationService := new(services.MockRegistrationService)
		paymentService := new(services.MockPaymentService)
		orchestrator := checkout.NewOrchestrator(registrationService, paymentService)

		handler := NewCheckoutHandler(orchestrator, carts)

		req := newFormRequest(t, "/checkout", url.Values{}, nil)
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/cart", rec.Header().Get("Location"))
		registrationService.AssertNotCalled(t, "Create")
		paymentService.AssertNotCalled(t, "CreateCheckoutSession")
	})

	t.Run("successful checkout redirects to the payment provider", func(t *testing.T) {
		carts, _ := newTestCartStore()
		registrationService := new(services.MockRegistrationService)
		registrationService.On("Create", mock.Anything, 7, mock.Anything).Return(&models.Registration{ID: 42}, nil)
		paymentService := new(services.MockPaymentService)
		paymentService.On("CreateCheckoutSession", mock.Anything, 42, 5000).Return(&models.CheckoutSession{
			SessionID:   "cs_123",
			RedirectURL: "https://pay.example.com/cs_123",
		}, nil)
		orchestrator := checkout.NewOrchestrator(registrationService, paymentService)

		handler := NewCheckoutHandler(orchestrator, carts)

		cookies := seedCart(t, carts, &models.Cart{Items: []models.CartItem{
			{TicketID: 1, TicketName: "General Admission", UnitPrice: 2500, Quantity: 2},
		}})

		req := newFormRequest(t, "/checkout", url.Values{}, cookies)
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "https://pay.example.com/cs_123", rec.Header().Get("Location"))
		// The redirect ends the attempt; the machine is free for a retry
		assert.Equal(t, checkout.StateIdle, orchestrator.State(7))
		// The cart is not cleared on redirect; that waits for the return flow
		assert.False(t, cartAfter(t, carts, rec, cookies).IsEmpty())
	})

	t.Run("HTMX checkout redirects via HX-Redirect", func(t *testing.T) {
		carts, _ := newTestCartStore()
		registrationService := new(services.MockRegistrationService)
		registrationService.On("Create", mock.Anything, 7, mock.Anything).Return(&models.Registration{ID: 42}, nil)
		paymentService := new(services.MockPaymentService)
		paymentService.On("CreateCheckoutSession", mock.Anything, 42, 2500).Return(&models.CheckoutSession{
			SessionID:   "cs_123",
			RedirectURL: "https://pay.example.com/cs_123",
		}, nil)
		orchestrator := checkout.NewOrchestrator(registrationService, paymentService)

		handler := NewCheckoutHandler(orchestrator, carts)

		cookies := seedCart(t, carts, &models.Cart{Items: []models.CartItem{
			{TicketID: 1, TicketName: "General Admission", UnitPrice: 2500, Quantity: 1},
		}})

		req := newFormRequest(t, "/checkout", url.Values{}, cookies)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://pay.example.com/cs_123", rec.Header().Get("HX-Redirect"))
	})

	t.Run("registration failure keeps the cart and reports the error", func(t *testing.T) {
		carts, _ := newTestCartStore()
		registrationService := new(services.MockRegistrationService)
		registrationService.On("Create", mock.Anything, 7, mock.Anything).Return(nil, &services.ValidationError{
			StatusCode: 422,
			Message:    "ticket type 1 is sold out",
		})
		paymentService := new(services.MockPaymentService)
		orchestrator := checkout.NewOrchestrator(registrationService, paymentService)

		handler := NewCheckoutHandler(orchestrator, carts)

		cookies := seedCart(t, carts, &models.Cart{Items: []models.CartItem{
			{TicketID: 1, TicketName: "General Admission", UnitPrice: 2500, Quantity: 2},
		}})

		req := newFormRequest(t, "/checkout", url.Values{}, cookies)
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Contains(t, rec.Body.String(), "sold out")
		assert.False(t, cartAfter(t, carts, rec, cookies).IsEmpty())
		paymentService.AssertNotCalled(t, "CreateCheckoutSession")
		assert.Equal(t, checkout.StateIdle, orchestrator.State(7))
	})

	t.Run("backend error text is escaped", func(t *testing.T) {
		carts, _ := newTestCartStore()
		registrationService := new(services.MockRegistrationService)
		registrationService.On("Create", mock.Anything, 7, mock.Anything).Return(nil, &services.ValidationError{
			StatusCode: 422,
			Message:    `<script>alert(1)</script>`,
		})
		orchestrator := checkout.NewOrchestrator(registrationService, new(services.MockPaymentService))

		handler := NewCheckoutHandler(orchestrator, carts)

		cookies := seedCart(t, carts, &models.Cart{Items: []models.CartItem{
			{TicketID: 1, TicketName: "General Admission", UnitPrice: 2500, Quantity: 1},
		}})

		req := newFormRequest(t, "/checkout", url.Values{}, cookies)
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		body := rec.Body.String()
		assert.NotContains(t, body, `<script>alert(1)</script>`)
		assert.Contains(t, body, `&lt;script&gt;alert(1)&lt;/script&gt;`)
	})

	t.Run("anonymous request is rejected", func(t *testing.T) {
		carts, _ := newTestCartStore()
		orchestrator := checkout.NewOrchestrator(new(services.MockRegistrationService), new(services.MockPaymentService))
		handler := NewCheckoutHandler(orchestrator, carts)

		req := httptest.NewRequest("POST", "/checkout", nil)
		rec := httptest.NewRecorder()
		handler.ProcessCheckout(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
