package models

import "time"

// Registration is the backend-authoritative record of a purchase attempt,
// created from a cart snapshot. The client only ever references it by the ID
// the backend issued.
type Registration struct {
	ID        int                  `json:"registrationID"`
	UserID    int                  `json:"userID"`
	Details   []RegistrationDetail `json:"registrationDetails"`
	Status    string               `json:"status,omitempty"`
	CreatedAt time.Time            `json:"createdAt,omitempty"`
}

// RegistrationDetail is one (ticket type, quantity) pair inside a
// registration. Field names follow the backend wire contract.
type RegistrationDetail struct {
	TicketID int `json:"ticketID"`
	Quantity int `json:"quantity"`
}

// RegistrationCreateRequest is the payload for POST /registrations
type RegistrationCreateRequest struct {
	UserID              int                  `json:"userID"`
	RegistrationDetails []RegistrationDetail `json:"registrationDetails"`
}

// CheckoutSession is the payment provider's transaction handle, issued by the
// backend for exactly one registration and amount. It is not reusable across
// registrations.
type CheckoutSession struct {
	SessionID   string `json:"sessionId"`
	RedirectURL string `json:"url"`
}

// CheckoutSessionCreateRequest is the payload for
// POST /payment/create-checkout-session. The return URLs are optional; when
// omitted the backend falls back to its configured defaults.
type CheckoutSessionCreateRequest struct {
	RegistrationID int    `json:"registrationId"`
	Amount         int    `json:"amount"`
	SuccessURL     string `json:"successUrl,omitempty"`
	CancelURL      string `json:"cancelUrl,omitempty"`
}

// Checkout session payment states as reported by the backend
const (
	CheckoutPaid   = "paid"
	CheckoutUnpaid = "unpaid"
)

// CheckoutSessionStatus is the backend's view of a checkout session, used to
// verify payment completion on return instead of trusting redirect query
// parameters.
type CheckoutSessionStatus struct {
	SessionID      string `json:"sessionId"`
	RegistrationID int    `json:"registrationId"`
	PaymentStatus  string `json:"paymentStatus"`
}

// IsPaid reports whether the provider confirmed payment for this session
func (s *CheckoutSessionStatus) IsPaid() bool {
	return s.PaymentStatus == CheckoutPaid
}
