package handlers

import (
	"encoding/json"
	"net/http"

	"eventgate/internal/models"

	"github.com/gorilla/sessions"
)

// cartSessionKey is the fixed key the serialized cart lives under in the
// cookie session. Everything that reads or writes the cart goes through
// SessionCartStore; nothing else touches this key.
const cartSessionKey = "cart"

// SessionCartStore is the single persistence adapter for the cart. The cart
// rides in the user's cookie session, so it survives reloads and restarts
// without any server-side storage; concurrent tabs resolve last-write-wins
// by cookie semantics.
type SessionCartStore struct {
	store sessions.Store
}

// NewSessionCartStore creates a new session-backed cart store
func NewSessionCartStore(store sessions.Store) *SessionCartStore {
	return &SessionCartStore{
		store: store,
	}
}

// Load returns the cart from the request's session. Any missing or malformed
// payload yields a fresh empty cart rather than an error — a broken cookie
// should never take the page down.
func (s *SessionCartStore) Load(r *http.Request) *models.Cart {
	session, err := s.store.Get(r, "session")
	if err != nil {
		return &models.Cart{}
	}

	cartData, ok := session.Values[cartSessionKey]
	if !ok {
		return &models.Cart{}
	}

	cartJSON, ok := cartData.(string)
	if !ok {
		return &models.Cart{}
	}

	var cart models.Cart
	if err := json.Unmarshal([]byte(cartJSON), &cart); err != nil {
		return &models.Cart{}
	}

	return &cart
}

// Save writes the cart back into the session cookie
func (s *SessionCartStore) Save(w http.ResponseWriter, r *http.Request, cart *models.Cart) error {
	session, err := s.store.Get(r, "session")
	if err != nil {
		return err
	}

	cartJSON, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	session.Values[cartSessionKey] = string(cartJSON)

	return session.Save(r, w)
}

// Clear empties the persisted cart. Safe to call when the cart is already
// empty; the reconciler relies on that for idempotent re-renders.
func (s *SessionCartStore) Clear(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r, &models.Cart{})
}
