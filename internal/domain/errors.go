package domain

import (
	"errors"
	"fmt"
)

// OAuth error types

var (
	// ErrStateMismatch indicates the callback state is absent or differs from the stored nonce
	ErrStateMismatch = errors.New("state mismatch")

	// ErrMissingCode indicates the callback carried no authorization code
	ErrMissingCode = errors.New("missing authorization code")

	// ErrStateStore indicates the single-use state ledger could not be reached
	ErrStateStore = errors.New("state store unavailable")
)

// Aggregation and model error types

var (
	// ErrUnauthenticated indicates no access token was supplied
	ErrUnauthenticated = errors.New("no spotify access token, user probably not logged in")

	// ErrUpstreamTimeout indicates a Spotify API call exceeded its deadline
	ErrUpstreamTimeout = errors.New("spotify request timeout")

	// ErrModelInvocation indicates the generative model call failed
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrModelTimeout indicates the generative model call exceeded its deadline
	ErrModelTimeout = errors.New("model request timeout")

	// ErrOutputParseFailure indicates the model reply was not the expected JSON.
	// It never leaves the roast pipeline; the pipeline substitutes a fallback roast.
	ErrOutputParseFailure = errors.New("model output is not valid roast json")
)

// TokenExchangeError is returned when the provider rejects an authorization code exchange.
type TokenExchangeError struct {
	Status int    // upstream HTTP status, 0 when no response was received
	Body   string // upstream response body
	Err    error
}

func (e *TokenExchangeError) Error() string {
	if e.Status == 0 && e.Err != nil {
		return fmt.Sprintf("token exchange failed: %v", e.Err)
	}
	return fmt.Sprintf("token exchange failed: status %d - %s", e.Status, e.Body)
}

func (e *TokenExchangeError) Unwrap() error {
	return e.Err
}

// UpstreamError is returned when a Spotify resource request answers with a non-success status.
type UpstreamError struct {
	Resource string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("spotify error %d on %s: %s", e.Status, e.Resource, e.Body)
}
