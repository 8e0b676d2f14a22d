package spotify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"getcooked/configs"
	"getcooked/internal/domain"
	"getcooked/internal/ports/output"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

var _ output.SpotifyClient = (*APIClientAdapter)(nil)

const (
	defaultTimeout    = 10 * time.Second
	defaultAPIBaseURL = "https://api.spotify.com/v1"
	defaultTimeRange  = "short_term"

	// GETs are idempotent, so one retry on a transient failure is allowed
	maxAttempts = 2
	retryDelay  = 250 * time.Millisecond

	// maxErrorBody caps how much of an error response is kept in UpstreamError
	maxErrorBody = 4096
)

// APIClientAdapter struct - Output adapter for the Spotify Web API
type APIClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	timeRange  string
	timeout    time.Duration
}

// NewAPIClientAdapter func - Creates new Spotify Web API adapter
func NewAPIClientAdapter(config configs.Spotify) *APIClientAdapter {
	baseURL := strings.TrimSuffix(config.APIBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	timeRange := config.TimeRange
	if timeRange == "" {
		timeRange = defaultTimeRange
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logrus.Infof("Spotify API client initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return &APIClientAdapter{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeRange:  timeRange,
		timeout:    timeout,
	}
}

// GetCurrentUser - GET /me
func (a *APIClientAdapter) GetCurrentUser(ctx context.Context, accessToken string) (*domain.SpotifyUser, error) {
	var user domain.SpotifyUser
	if err := a.get(ctx, domain.ResourceProfile, accessToken, "me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetTopArtists - GET /me/top/artists
func (a *APIClientAdapter) GetTopArtists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyArtist, error) {
	var page domain.Paging[domain.SpotifyArtist]
	query := url.Values{"limit": {strconv.Itoa(limit)}, "time_range": {a.timeRange}}
	if err := a.get(ctx, domain.ResourceTopArtists, accessToken, "me/top/artists", query, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetTopTracks - GET /me/top/tracks
func (a *APIClientAdapter) GetTopTracks(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyTrack, error) {
	var page domain.Paging[domain.SpotifyTrack]
	query := url.Values{"limit": {strconv.Itoa(limit)}, "time_range": {a.timeRange}}
	if err := a.get(ctx, domain.ResourceTopTracks, accessToken, "me/top/tracks", query, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetRecentlyPlayed - GET /me/player/recently-played
func (a *APIClientAdapter) GetRecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlayHistory, error) {
	var page domain.Paging[domain.SpotifyPlayHistory]
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := a.get(ctx, domain.ResourceRecentlyPlayed, accessToken, "me/player/recently-played", query, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// GetPlaylists - GET /me/playlists
func (a *APIClientAdapter) GetPlaylists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlaylist, error) {
	var page domain.Paging[domain.SpotifyPlaylist]
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if err := a.get(ctx, domain.ResourcePlaylists, accessToken, "me/playlists", query, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// get performs one bearer-authenticated GET under its own deadline and decodes the JSON body into out
func (a *APIClientAdapter) get(ctx context.Context, resource, accessToken, path string, query url.Values, out any) error {
	reqCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	client := oauth2.NewClient(
		context.WithValue(reqCtx, oauth2.HTTPClient, a.httpClient),
		oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
	)

	endpoint := a.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	resp, err := a.retryOnce(reqCtx, resource, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return client.Do(req)
	})
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return fmt.Errorf("%w: %s after %v", domain.ErrUpstreamTimeout, resource, a.timeout)
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s response: %w", resource, err)
	}

	return nil
}

// retryOnce executes operation and repeats it a single time on a transient failure.
// Non-success responses that are not retried come back as *domain.UpstreamError.
func (a *APIClientAdapter) retryOnce(ctx context.Context, resource string, operation func() (*http.Response, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := operation()
		if err != nil {
			if !isTransientError(err) || ctx.Err() != nil {
				return nil, fmt.Errorf("spotify %s request failed: %w", resource, err)
			}
			lastErr = fmt.Errorf("spotify %s request failed: %w", resource, err)
		} else {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
			resp.Body.Close()
			upstreamErr := &domain.UpstreamError{Resource: resource, Status: resp.StatusCode, Body: string(body)}

			if resp.StatusCode < 500 {
				return nil, upstreamErr
			}
			lastErr = upstreamErr
		}

		if attempt < maxAttempts {
			logrus.Warnf("Spotify %s attempt %d/%d failed: %v, retrying in %v", resource, attempt, maxAttempts, lastErr, retryDelay)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("spotify %s request cancelled: %w", resource, ctx.Err())
			case <-time.After(retryDelay):
			}
		}
	}

	return nil, lastErr
}

// isTransientError reports whether a transport error is worth one more attempt
func isTransientError(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	for _, pattern := range []string{"connection refused", "connection reset", "eof"} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}
