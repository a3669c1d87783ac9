package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"eventgate/internal/middleware"
	"eventgate/internal/models"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

// newTestCartStore builds a cookie-backed cart store for handler tests
func newTestCartStore() (*SessionCartStore, sessions.Store) {
	store := sessions.NewCookieStore([]byte("test-secret"))
	return NewSessionCartStore(store), store
}

// seedCart persists a cart and returns the cookies that carry it
func seedCart(t *testing.T, carts *SessionCartStore, cart *models.Cart) []*http.Cookie {
	t.Helper()

	req := httptest.NewRequest("GET", "/seed", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, carts.Save(rec, req, cart))
	return rec.Result().Cookies()
}

// newFormRequest builds an authenticated POST form request carrying the given
// session cookies
func newFormRequest(t *testing.T, target string, form url.Values, cookies []*http.Cookie) *http.Request {
	t.Helper()

	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return authenticate(req)
}

// authenticate puts a test user into the request context
func authenticate(req *http.Request) *http.Request {
	user := &models.User{ID: 7, Email: "user@example.com", FirstName: "Test", LastName: "User"}
	return req.WithContext(middleware.SetUserContext(req.Context(), user))
}

// cartAfter reloads the cart using the cookies a handler response set,
// falling back to the request cookies when the response left them unchanged
func cartAfter(t *testing.T, carts *SessionCartStore, rec *httptest.ResponseRecorder, fallback []*http.Cookie) *models.Cart {
	t.Helper()

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		cookies = fallback
	}
	req := httptest.NewRequest("GET", "/reload", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return carts.Load(req)
}
