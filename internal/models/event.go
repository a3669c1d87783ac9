package models

import "time"

// Event represents a published event as served by the backend API
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
}

// TicketType represents a purchasable ticket category for an event. Price is
// in cents; this is the value the cart denormalizes at add time.
type TicketType struct {
	ID          int    `json:"id"`
	EventID     int    `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
	Sold        int    `json:"sold"`
}

// Available returns the number of unsold tickets
func (t *TicketType) Available() int {
	available := t.Quantity - t.Sold
	if available < 0 {
		return 0
	}
	return available
}

// IsAvailable reports whether any tickets remain
func (t *TicketType) IsAvailable() bool {
	return t.Available() > 0
}
