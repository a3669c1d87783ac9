package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"eventgate/internal/middleware"
	"eventgate/internal/models"
	"eventgate/internal/services"
	"eventgate/web/templates/pages"
)

// CartHandler handles shopping cart requests. The cart itself is a pure
// state container (models.Cart); this layer does the pre-validation the
// store deliberately doesn't — ticket lookup and stock checks — before
// mutating it.
type CartHandler struct {
	eventService services.EventServiceInterface
	carts        *SessionCartStore
}

// NewCartHandler creates a new cart handler
func NewCartHandler(eventService services.EventServiceInterface, carts *SessionCartStore) *CartHandler {
	return &CartHandler{
		eventService: eventService,
		carts:        carts,
	}
}

// AddToCart adds tickets to the shopping cart. Name and price are
// denormalized from the backend ticket type at add time; the cart keeps that
// snapshot even if the backend price changes later.
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	eventID, err := strconv.Atoi(r.FormValue("event_id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	ticketID, err := strconv.Atoi(r.FormValue("ticket_id"))
	if err != nil {
		http.Error(w, "Invalid ticket ID", http.StatusBadRequest)
		return
	}

	quantity, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil || quantity <= 0 {
		http.Error(w, "Invalid quantity", http.StatusBadRequest)
		return
	}

	// Look up the ticket type for the denormalized name/price snapshot
	ticketTypes, err := h.eventService.GetTicketTypesByEventID(r.Context(), eventID)
	if err != nil {
		http.Error(w, "Failed to get ticket types", http.StatusInternalServerError)
		return
	}

	var selected *models.TicketType
	for _, tt := range ticketTypes {
		if tt.ID == ticketID {
			selected = tt
			break
		}
	}

	if selected == nil {
		http.Error(w, "Ticket type not found", http.StatusNotFound)
		return
	}

	// Stock pre-validation happens here, not in the cart store
	if !selected.IsAvailable() {
		http.Error(w, "Tickets are not available", http.StatusBadRequest)
		return
	}

	if quantity > selected.Available() {
		http.Error(w, fmt.Sprintf("Only %d tickets available", selected.Available()), http.StatusBadRequest)
		return
	}

	cart := h.carts.Load(r)
	cart.AddItem(selected.ID, selected.Name, quantity, selected.Price)

	if err := h.carts.Save(w, r, cart); err != nil {
		handleSessionError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `
		<div class="cart-notice cart-notice-success">
			<p>Added %d ticket(s) to cart</p>
			<p>Cart total: %s</p>
			<a href="/cart">View Cart</a>
		</div>
	`, quantity, formatAmount(cart.TotalAmount()))
}

// ViewCart displays the shopping cart
func (h *CartHandler) ViewCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		handleRedirect(w, r, "/auth/login", http.StatusSeeOther)
		return
	}

	cart := h.carts.Load(r)

	w.Header().Set("Content-Type", "text/html")
	component := pages.CartPage(cart)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// IncreaseItem adds one ticket to a cart line
func (h *CartHandler) IncreaseItem(w http.ResponseWriter, r *http.Request) {
	h.adjustItem(w, r, func(cart *models.Cart, ticketID int) {
		cart.IncreaseQuantity(ticketID)
	})
}

// DecreaseItem removes one ticket from a cart line; at quantity 1 the line
// itself is removed
func (h *CartHandler) DecreaseItem(w http.ResponseWriter, r *http.Request) {
	h.adjustItem(w, r, func(cart *models.Cart, ticketID int) {
		cart.DecreaseQuantity(ticketID)
	})
}

// RemoveItem removes a cart line entirely
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.adjustItem(w, r, func(cart *models.Cart, ticketID int) {
		cart.RemoveItem(ticketID)
	})
}

func (h *CartHandler) adjustItem(w http.ResponseWriter, r *http.Request, mutate func(*models.Cart, int)) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	ticketID, err := strconv.Atoi(r.FormValue("ticket_id"))
	if err != nil {
		http.Error(w, "Invalid ticket ID", http.StatusBadRequest)
		return
	}

	cart := h.carts.Load(r)
	mutate(cart, ticketID)

	if err := h.carts.Save(w, r, cart); err != nil {
		handleSessionError(w, r, err)
		return
	}

	handleRedirect(w, r, "/cart", http.StatusSeeOther)
}

// ClearCart clears the shopping cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	if err := h.carts.Clear(w, r); err != nil {
		handleSessionError(w, r, err)
		return
	}

	handleRedirect(w, r, "/cart", http.StatusSeeOther)
}
