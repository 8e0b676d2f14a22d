package domain

import "time"

// Session is the per-browser state carried between requests.
// The HTTP adapter loads it from cookies and writes it back; services only see values.
type Session struct {
	AccessToken  string
	RefreshToken string
	OAuthState   string
}

// IsAuthenticated reports whether a token exchange has completed for this session
func (s Session) IsAuthenticated() bool {
	return s.AccessToken != ""
}

// TokenPair holds the secrets returned by a successful authorization code exchange
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}

// AuthorizationRedirect is the result of starting an authorization round trip.
// The caller persists State with StateTTL and redirects the browser to URL.
type AuthorizationRedirect struct {
	URL      string
	State    string
	StateTTL time.Duration
}

// CallbackRequest carries what the provider sent back to the redirect URI
type CallbackRequest struct {
	Code  string
	State string
	Error string // provider-side denial, e.g. access_denied
}
