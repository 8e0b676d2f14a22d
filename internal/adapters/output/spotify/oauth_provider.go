package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"getcooked/configs"
	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var _ output.OAuthProvider = (*OAuthProviderAdapter)(nil)

// OAuthProviderAdapter struct - Output adapter for the Spotify accounts service
type OAuthProviderAdapter struct {
	oauthConfig *oauth2.Config
	httpClient  *http.Client
}

// NewOAuthProviderAdapter func - Creates new Spotify OAuth adapter.
// The token endpoint is called with HTTP Basic client credentials.
func NewOAuthProviderAdapter(config configs.Spotify) *OAuthProviderAdapter {
	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OAuthProviderAdapter{
		oauthConfig: &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RedirectURL:  config.RedirectURI,
			Scopes:       strings.Fields(config.Scopes),
			Endpoint: oauth2.Endpoint{
				AuthURL:   config.AuthURL,
				TokenURL:  config.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AuthCodeURL - Builds the authorize URL for the given state
func (a *OAuthProviderAdapter) AuthCodeURL(state string) string {
	return a.oauthConfig.AuthCodeURL(state)
}

// Exchange - Trades an authorization code for access and refresh tokens
func (a *OAuthProviderAdapter) Exchange(ctx context.Context, code string) (*domain.TokenPair, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)

	token, err := a.oauthConfig.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			status := 0
			if retrieveErr.Response != nil {
				status = retrieveErr.Response.StatusCode
			}
			return nil, &domain.TokenExchangeError{
				Status: status,
				Body:   string(retrieveErr.Body),
				Err:    err,
			}
		}
		return nil, &domain.TokenExchangeError{Err: fmt.Errorf("failed to exchange authorization code: %w", err)}
	}

	logrus.Infof("Spotify token exchange successful, expires at %s", token.Expiry.Format(time.RFC3339))

	return &domain.TokenPair{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		TokenType:    token.TokenType,
		Expiry:       token.Expiry,
	}, nil
}
