package handlers

import (
	"fmt"
	"net/http"

	"eventgate/internal/middleware"
)

// formatAmount renders a cent amount as a user-facing currency string
func formatAmount(cents int) string {
	return fmt.Sprintf("KES %.2f", float64(cents)/100)
}

// handleRedirect handles redirects appropriately for HTMX vs regular requests
func handleRedirect(w http.ResponseWriter, r *http.Request, url string, statusCode int) {
	if middleware.IsHTMXRequest(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusOK)
	} else {
		http.Redirect(w, r, url, statusCode)
	}
}

// handleSessionError handles session errors appropriately for HTMX vs regular requests
func handleSessionError(w http.ResponseWriter, r *http.Request, err error) {
	if middleware.IsHTMXRequest(r) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<div class="cart-notice cart-notice-error"><p>Session error. Please refresh the page and try again.</p></div>`))
	} else {
		http.Error(w, "Session error", http.StatusInternalServerError)
	}
}
