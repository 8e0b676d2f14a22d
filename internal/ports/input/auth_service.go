package input

import (
	"context"

	"getcooked/internal/domain"
)

// AuthService interface - Input port (use case)
// Defines the OAuth authorization-code round trip against Spotify
type AuthService interface {
	// BeginAuthorization generates a fresh nonce and the provider URL to redirect the browser to.
	// Persisting the nonce is the caller's job.
	BeginAuthorization(ctx context.Context) (*domain.AuthorizationRedirect, error)

	// CompleteAuthorization validates the returned state against storedState and exchanges the code.
	// It rejects with ErrStateMismatch or ErrMissingCode before any network call.
	CompleteAuthorization(ctx context.Context, request domain.CallbackRequest, storedState string) (*domain.TokenPair, error)
}
