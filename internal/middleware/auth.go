package middleware

import (
	"context"
	"net/http"
	"strconv"

	"eventgate/internal/models"

	"github.com/gorilla/sessions"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// IdentityMiddleware lifts the signed-in user out of the session cookie.
// Authentication itself happens in the backend identity service; by the time
// a request reaches this tier, the session either carries a user or it
// doesn't.
type IdentityMiddleware struct {
	store sessions.Store
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(store sessions.Store) *IdentityMiddleware {
	return &IdentityMiddleware{
		store: store,
	}
}

// LoadUser middleware loads the current user from session and adds to context
func (m *IdentityMiddleware) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, "session")
		if err != nil {
			// Continue without user if session is invalid
			next.ServeHTTP(w, r)
			return
		}

		userID, ok := session.Values["user_id"].(int)
		if !ok || userID == 0 {
			// Session storage may have converted the type
			if userIDValue, exists := session.Values["user_id"]; exists {
				switch v := userIDValue.(type) {
				case float64:
					userID = int(v)
					ok = userID != 0
				case string:
					if parsedID, err := strconv.Atoi(v); err == nil {
						userID = parsedID
						ok = userID != 0
					}
				}
			}

			if !ok || userID == 0 {
				next.ServeHTTP(w, r)
				return
			}
		}

		user := &models.User{ID: userID}
		if email, ok := session.Values["user_email"].(string); ok {
			user.Email = email
		}
		if firstName, ok := session.Values["user_first_name"].(string); ok {
			user.FirstName = firstName
		}
		if lastName, ok := session.Values["user_last_name"].(string); ok {
			user.LastName = lastName
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth middleware ensures a user is present on the request
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		if user == nil {
			if IsHTMXRequest(r) {
				w.Header().Set("HX-Redirect", "/auth/login")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/auth/login?redirect="+r.URL.Path, http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext retrieves the user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SetUserContext sets the user in the context (for testing)
func SetUserContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, UserContextKey, user)
}

// IsHTMXRequest checks if the request is from HTMX
func IsHTMXRequest(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
