package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"eventgate/internal/models"
	"eventgate/internal/services"
	"eventgate/web/templates/pages"

	"github.com/go-chi/chi/v5"
)

// EventsHandler handles event browsing requests
type EventsHandler struct {
	eventService services.EventServiceInterface
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventService services.EventServiceInterface) *EventsHandler {
	return &EventsHandler{
		eventService: eventService,
	}
}

// EventsListPage displays all published events
func (h *EventsHandler) EventsListPage(w http.ResponseWriter, r *http.Request) {
	events, err := h.eventService.ListEvents(r.Context())
	if err != nil {
		http.Error(w, "Failed to load events", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	component := pages.EventsListPage(events)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}

// EventDetailsPage displays a single event with its ticket types and
// add-to-cart forms
func (h *EventsHandler) EventDetailsPage(w http.ResponseWriter, r *http.Request) {
	eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid event ID", http.StatusBadRequest)
		return
	}

	event, err := h.eventService.GetEventByID(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to load event", http.StatusInternalServerError)
		return
	}

	ticketTypes, err := h.eventService.GetTicketTypesByEventID(r.Context(), eventID)
	if err != nil {
		http.Error(w, "Failed to load ticket types", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	component := pages.EventDetailsPage(event, ticketTypes)
	if err := component.Render(r.Context(), w); err != nil {
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
	}
}
