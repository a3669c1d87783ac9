package services

import (
	"errors"
	"fmt"
)

// ErrMissingRedirectURL is returned when the backend reports a checkout
// session without a usable payment page URL. The whole checkout attempt fails
// hard in that case; there is nowhere to send the user.
var ErrMissingRedirectURL = errors.New("checkout session has no redirect URL")

// ValidationError is a backend 4xx rejection. It is the user's payload that
// is wrong, so retrying the same request is pointless.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (status %d): %s", e.StatusCode, e.Message)
}

// ServerError is a backend 5xx failure. The request may be fine; the caller
// decides whether to surface a retry option. Nothing in this package retries
// on its own because registration creation is not idempotent.
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
}
