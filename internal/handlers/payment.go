package handlers

import (
	"log"
	"net/http"
	"strconv"

	"eventgate/internal/services"
	"eventgate/web/templates/pages"

	"github.com/a-h/templ"
)

// PaymentHandler reconciles the return leg of a checkout. The payment
// provider redirects the browser back with session_id and registrationId
// query parameters; nothing in those parameters is trusted until the session
// is verified against the backend. The cart is only cleared once the backend
// confirms payment.
type PaymentHandler struct {
	paymentService services.PaymentServiceInterface
	carts          *SessionCartStore
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService services.PaymentServiceInterface, carts *SessionCartStore) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		carts:          carts,
	}
}

// PaymentSuccess handles the provider's success redirect. The URL alone
// proves nothing — users can hit it directly — so the session is verified
// before the cart is touched. Reloading the page re-runs verification and
// re-clears an already empty cart, which is a no-op.
func (h *PaymentHandler) PaymentSuccess(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("session_id")
	registrationParam := r.URL.Query().Get("registrationId")

	if sessionID == "" || registrationParam == "" {
		h.renderPage(w, r, http.StatusBadRequest, pages.PaymentInvalidSessionPage("Missing payment session details."))
		return
	}

	registrationID, err := strconv.Atoi(registrationParam)
	if err != nil || registrationID <= 0 {
		h.renderPage(w, r, http.StatusBadRequest, pages.PaymentInvalidSessionPage("Invalid registration reference."))
		return
	}

	status, err := h.paymentService.VerifyCheckoutSession(r.Context(), sessionID)
	if err != nil {
		log.Printf("Payment verification failed for session %s: %v", sessionID, err)
		h.renderPage(w, r, http.StatusOK, pages.PaymentPendingPage(registrationID))
		return
	}

	if status.RegistrationID != registrationID {
		log.Printf("Payment session %s belongs to registration %d, not %d",
			sessionID, status.RegistrationID, registrationID)
		h.renderPage(w, r, http.StatusBadRequest, pages.PaymentInvalidSessionPage("Payment session does not match this registration."))
		return
	}

	if !status.IsPaid() {
		h.renderPage(w, r, http.StatusOK, pages.PaymentPendingPage(registrationID))
		return
	}

	// Payment confirmed — clearing the cart is safe to repeat on reload
	if err := h.carts.Clear(w, r); err != nil {
		log.Printf("Failed to clear cart after payment for registration %d: %v", registrationID, err)
	}

	h.renderPage(w, r, http.StatusOK, pages.PaymentSuccessPage(registrationID))
}

// PaymentCancelled handles the provider's cancel redirect. The cart is left
// untouched so the user can try again.
func (h *PaymentHandler) PaymentCancelled(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pages.PaymentCancelledPage())
}

func (h *PaymentHandler) renderPage(w http.ResponseWriter, r *http.Request, statusCode int, component templ.Component) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(statusCode)
	if err := component.Render(r.Context(), w); err != nil {
		log.Printf("Failed to render payment page: %v", err)
	}
}
