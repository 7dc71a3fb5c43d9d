package integrations

import (
	"errors"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds a single HTTP request made by a [Client].
const DefaultTimeout = 10 * time.Second

var (
	// ErrNotFound is returned when a resource doesn't exist in the remote API.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")

	// ErrRateLimited is returned when the remote API answers 429 or 403 to
	// signal throttling.
	ErrRateLimited = errors.New("rate limited")

	// ErrDecode is returned when a response body is not the expected JSON.
	ErrDecode = errors.New("invalid response body")
)

// NewHTTPClient creates an HTTP client with the given timeout.
// A non-positive timeout falls back to [DefaultTimeout].
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// URLEncode percent-encodes a string for use in URL query values.
// This is a convenience wrapper around [url.QueryEscape].
func URLEncode(s string) string { return url.QueryEscape(s) }
