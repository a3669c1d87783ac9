// Package checkout sequences the cart-to-payment handoff: one registration,
// then one checkout session, then an external redirect. The sequence is
// modeled as an explicit state machine because the registration step is not
// idempotent — a second trigger while one is in flight would create a second
// registration on the backend, so "already submitting" has to be structural,
// not a UI flag.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"eventgate/internal/models"
	"eventgate/internal/services"

	"github.com/google/uuid"
)

// State is the checkout attempt state for one user
type State string

const (
	// StateIdle means no checkout attempt is in flight
	StateIdle State = "idle"
	// StateSubmitting covers both network steps: registration creation and
	// checkout session creation
	StateSubmitting State = "submitting"
	// StateAwaitingRedirect means a session exists and the redirect has not
	// been issued yet
	StateAwaitingRedirect State = "awaiting_redirect"
)

var (
	// ErrEmptyCart rejects a checkout trigger on an empty cart. No network
	// call is made and the state machine stays in Idle.
	ErrEmptyCart = errors.New("cannot check out an empty cart")
	// ErrCheckoutInProgress rejects a trigger while an attempt is in flight.
	// This is the double-submission guard in front of the non-idempotent
	// registration step.
	ErrCheckoutInProgress = errors.New("a checkout attempt is already in progress")
)

// Result is a successful handoff: everything the handler needs to send the
// user to the payment page.
type Result struct {
	AttemptID      string
	RegistrationID int
	SessionID      string
	RedirectURL    string
	Amount         int
}

type attempt struct {
	id    string
	state State
}

// Orchestrator runs checkout attempts. It tracks at most one in-flight
// attempt per user; the cart itself is never touched here — clearing it is
// the return-flow reconciler's job, after payment is confirmed.
type Orchestrator struct {
	registrations services.RegistrationServiceInterface
	payments      services.PaymentServiceInterface

	mu       sync.Mutex
	attempts map[int]*attempt // keyed by user ID
}

// NewOrchestrator creates a new checkout orchestrator
func NewOrchestrator(registrations services.RegistrationServiceInterface, payments services.PaymentServiceInterface) *Orchestrator {
	return &Orchestrator{
		registrations: registrations,
		payments:      payments,
		attempts:      make(map[int]*attempt),
	}
}

// State returns the current checkout state for a user
func (o *Orchestrator) State(userID int) State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if a, ok := o.attempts[userID]; ok {
		return a.state
	}
	return StateIdle
}

// Checkout runs one attempt: snapshot the cart, create a registration, then a
// checkout session. Registration must succeed before session creation is
// attempted — there is a hard data dependency, and a failed registration must
// never be followed by a session call.
//
// On any failure the machine returns to Idle and the cart is left untouched
// so the user can retry manually. A registration that succeeded before a
// session failure is orphaned on the backend; that is accepted here and
// reconciled out-of-band.
func (o *Orchestrator) Checkout(ctx context.Context, userID int, cart *models.Cart) (*Result, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	o.mu.Lock()
	// A live entry is always Submitting or AwaitingRedirect; finished
	// attempts are removed from the map entirely
	if _, ok := o.attempts[userID]; ok {
		o.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	a := &attempt{id: uuid.NewString(), state: StateSubmitting}
	o.attempts[userID] = a
	o.mu.Unlock()

	// Read the cart exactly once; later mutations no longer matter
	details := cart.Snapshot()
	amount := cart.TotalAmount()

	registration, err := o.registrations.Create(ctx, userID, details)
	if err != nil {
		o.reset(userID)
		return nil, fmt.Errorf("registration submission failed: %w", err)
	}

	session, err := o.payments.CreateCheckoutSession(ctx, registration.ID, amount)
	if err != nil {
		// Registration is now orphaned on the backend; a backend expiry job
		// cleans those up.
		log.Printf("checkout %s: session creation failed after registration %d was created: %v", a.id, registration.ID, err)
		o.reset(userID)
		return nil, fmt.Errorf("checkout session creation failed: %w", err)
	}

	o.setState(userID, StateAwaitingRedirect)
	log.Printf("checkout %s: registration %d, session %s, amount %d", a.id, registration.ID, session.SessionID, amount)

	return &Result{
		AttemptID:      a.id,
		RegistrationID: registration.ID,
		SessionID:      session.SessionID,
		RedirectURL:    session.RedirectURL,
		Amount:         amount,
	}, nil
}

// MarkRedirected records that the browser was sent to the payment provider.
// This is the terminal exit of the attempt, so its record is dropped rather
// than retained: State reports Idle afterwards and a subsequent Checkout for
// the same user starts over. Keeping finished attempts around would grow the
// map by one entry per user for the life of the process.
func (o *Orchestrator) MarkRedirected(userID int) {
	o.reset(userID)
}

func (o *Orchestrator) setState(userID int, state State) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if a, ok := o.attempts[userID]; ok {
		a.state = state
	}
}

// reset returns the user's machine to Idle once an attempt is over, whether
// it failed or exited through the redirect
func (o *Orchestrator) reset(userID int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.attempts, userID)
}
