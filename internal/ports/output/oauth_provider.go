package output

import (
	"context"

	"getcooked/internal/domain"
)

// OAuthProvider interface - Output port
// Defines what the application needs from the provider's accounts service
type OAuthProvider interface {
	// AuthCodeURL builds the authorization URL with response_type=code, the fixed scope set,
	// the registered redirect URI and the given state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for tokens at the token endpoint.
	// Provider rejections are returned as *domain.TokenExchangeError.
	Exchange(ctx context.Context, code string) (*domain.TokenPair, error)
}
