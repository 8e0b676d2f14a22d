package http

import (
	"time"

	"getcooked/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// Cookie names shared with the frontend
const (
	StateCookieName        = "spotify_auth_state"
	AccessTokenCookieName  = "spotify_access_token"
	RefreshTokenCookieName = "spotify_refresh_token"
)

// CookieStore struct - Keeps the per-browser Session in HTTP-only cookies
type CookieStore struct {
	secure bool
}

// NewCookieStore func - secure should only be false for plain-http local development
func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure}
}

// Load reads the session from the request cookies
func (s *CookieStore) Load(c *fiber.Ctx) domain.Session {
	return domain.Session{
		AccessToken:  c.Cookies(AccessTokenCookieName),
		RefreshToken: c.Cookies(RefreshTokenCookieName),
		OAuthState:   c.Cookies(StateCookieName),
	}
}

// SaveState stores the OAuth nonce for one authorization round trip
func (s *CookieStore) SaveState(c *fiber.Ctx, state string, ttl time.Duration) {
	cookie := s.cookie(StateCookieName, state)
	cookie.MaxAge = int(ttl.Seconds())
	c.Cookie(cookie)
}

// ClearState removes the OAuth nonce
func (s *CookieStore) ClearState(c *fiber.Ctx) {
	s.clear(c, StateCookieName)
}

// SaveTokens stores both tokens as browser-session cookies
func (s *CookieStore) SaveTokens(c *fiber.Ctx, tokens *domain.TokenPair) {
	c.Cookie(s.cookie(AccessTokenCookieName, tokens.AccessToken))
	if tokens.RefreshToken != "" {
		c.Cookie(s.cookie(RefreshTokenCookieName, tokens.RefreshToken))
	}
}

// ClearTokens removes both tokens
func (s *CookieStore) ClearTokens(c *fiber.Ctx) {
	s.clear(c, AccessTokenCookieName)
	s.clear(c, RefreshTokenCookieName)
}

// clear writes an empty value that is already expired. fasthttp drops negative max-age,
// so an expiry in the past is used instead.
func (s *CookieStore) clear(c *fiber.Ctx, name string) {
	cookie := s.cookie(name, "")
	cookie.Expires = time.Unix(0, 0)
	c.Cookie(cookie)
}

func (s *CookieStore) cookie(name, value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
}
