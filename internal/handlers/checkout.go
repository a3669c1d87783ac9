package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"eventgate/internal/checkout"
	"eventgate/internal/middleware"
	"eventgate/internal/services"
	"eventgate/web/templates/pages"

	"github.com/a-h/templ"
)

// CheckoutHandler turns a checkout trigger into an external payment redirect.
// All sequencing and failure handling lives in the orchestrator; this layer
// only translates its outcomes into HTTP.
type CheckoutHandler struct {
	orchestrator *checkout.Orchestrator
	carts        *SessionCartStore
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(orchestrator *checkout.Orchestrator, carts *SessionCartStore) *CheckoutHandler {
	return &CheckoutHandler{
		orchestrator: orchestrator,
		carts:        carts,
	}
}

// CheckoutPage displays the order summary before payment
func (h *CheckoutHandler) CheckoutPage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handleRedirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	cart := h.carts.Load(r)
	if cart.IsEmpty() {
		handleRedirect(w, r, "/cart", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	component := pages.CheckoutPage(user, cart)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// ProcessCheckout runs a checkout attempt and redirects the browser to the
// payment provider. On any failure the cart is preserved so the user can
// retry without re-entering their selection.
func (h *CheckoutHandler) ProcessCheckout(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	cart := h.carts.Load(r)

	result, err := h.orchestrator.Checkout(r.Context(), user.ID, cart)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			// Checkout on an empty cart is a no-op, not an error page
			handleRedirect(w, r, "/cart", http.StatusSeeOther)
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			h.renderCheckoutError(w, r, http.StatusConflict,
				"Your checkout is already being processed. Please wait.")
		default:
			log.Printf("Checkout failed for user %d: %v", user.ID, err)
			h.renderCheckoutError(w, r, http.StatusBadGateway, checkoutErrorMessage(err))
		}
		return
	}

	handleRedirect(w, r, result.RedirectURL, http.StatusSeeOther)
	h.orchestrator.MarkRedirected(user.ID)
}

// renderCheckoutError surfaces a checkout failure without touching the cart.
// HTMX requests get a fragment, everything else a full page; the message may
// carry backend error text and is escaped on both paths.
func (h *CheckoutHandler) renderCheckoutError(w http.ResponseWriter, r *http.Request, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(statusCode)

	if middleware.IsHTMXRequest(r) {
		fmt.Fprintf(w, `
			<div class="cart-notice cart-notice-error">
				<p>%s</p>
				<a href="/cart">Back to cart</a>
			</div>
		`, templ.EscapeString(message))
		return
	}

	if err := pages.CheckoutErrorPage(message).Render(r.Context(), w); err != nil {
		log.Printf("Failed to render checkout error page: %v", err)
	}
}

// checkoutErrorMessage maps service failures to user-facing copy
func checkoutErrorMessage(err error) string {
	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return fmt.Sprintf("Checkout was rejected: %s", vErr.Message)
	}
	return "Checkout failed. Your cart is unchanged. Please try again."
}
