package application

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"getcooked/internal/domain"
)

// Mock implementations for testing

// MockOAuthProvider implements output.OAuthProvider for testing
type MockOAuthProvider struct {
	AuthCodeURLFunc func(state string) string
	ExchangeFunc    func(ctx context.Context, code string) (*domain.TokenPair, error)

	// Captured values for assertions
	LastState     string
	LastCode      string
	ExchangeCalls int
}

func (m *MockOAuthProvider) AuthCodeURL(state string) string {
	m.LastState = state
	if m.AuthCodeURLFunc != nil {
		return m.AuthCodeURLFunc(state)
	}
	return "https://accounts.example.com/authorize?state=" + state
}

func (m *MockOAuthProvider) Exchange(ctx context.Context, code string) (*domain.TokenPair, error) {
	m.LastCode = code
	m.ExchangeCalls++
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return &domain.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil
}

// MockStateLedger implements output.StateLedger for testing
type MockStateLedger struct {
	ConsumeFunc func(ctx context.Context, state string, ttl time.Duration) (bool, error)

	LastState string
	LastTTL   time.Duration
}

func (m *MockStateLedger) Consume(ctx context.Context, state string, ttl time.Duration) (bool, error) {
	m.LastState = state
	m.LastTTL = ttl
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, state, ttl)
	}
	return true, nil
}

func (m *MockStateLedger) Close() error {
	return nil
}

// MockSpotifyClient implements output.SpotifyClient for testing.
// Methods are called concurrently by the aggregator, so captured values are guarded.
type MockSpotifyClient struct {
	GetCurrentUserFunc    func(ctx context.Context, accessToken string) (*domain.SpotifyUser, error)
	GetTopArtistsFunc     func(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyArtist, error)
	GetTopTracksFunc      func(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyTrack, error)
	GetRecentlyPlayedFunc func(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlayHistory, error)
	GetPlaylistsFunc      func(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlaylist, error)

	Calls atomic.Int32

	mu     sync.Mutex
	Tokens []string
	Limits map[string]int
}

func (m *MockSpotifyClient) record(resource, accessToken string, limit int) {
	m.Calls.Add(1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Tokens = append(m.Tokens, accessToken)
	if m.Limits == nil {
		m.Limits = make(map[string]int)
	}
	m.Limits[resource] = limit
}

func (m *MockSpotifyClient) GetCurrentUser(ctx context.Context, accessToken string) (*domain.SpotifyUser, error) {
	m.record(domain.ResourceProfile, accessToken, 0)
	if m.GetCurrentUserFunc != nil {
		return m.GetCurrentUserFunc(ctx, accessToken)
	}
	return &domain.SpotifyUser{ID: "ari", DisplayName: "Ari"}, nil
}

func (m *MockSpotifyClient) GetTopArtists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyArtist, error) {
	m.record(domain.ResourceTopArtists, accessToken, limit)
	if m.GetTopArtistsFunc != nil {
		return m.GetTopArtistsFunc(ctx, accessToken, limit)
	}
	return []domain.SpotifyArtist{{Name: "Taylor Swift"}}, nil
}

func (m *MockSpotifyClient) GetTopTracks(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyTrack, error) {
	m.record(domain.ResourceTopTracks, accessToken, limit)
	if m.GetTopTracksFunc != nil {
		return m.GetTopTracksFunc(ctx, accessToken, limit)
	}
	return []domain.SpotifyTrack{{Name: "Cruel Summer", Artists: []domain.SpotifyArtist{{Name: "Taylor Swift"}}}}, nil
}

func (m *MockSpotifyClient) GetRecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlayHistory, error) {
	m.record(domain.ResourceRecentlyPlayed, accessToken, limit)
	if m.GetRecentlyPlayedFunc != nil {
		return m.GetRecentlyPlayedFunc(ctx, accessToken, limit)
	}
	return []domain.SpotifyPlayHistory{
		{Track: &domain.SpotifyTrack{Name: "Anti-Hero", Artists: []domain.SpotifyArtist{{Name: "Taylor Swift"}}}},
	}, nil
}

func (m *MockSpotifyClient) GetPlaylists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlaylist, error) {
	m.record(domain.ResourcePlaylists, accessToken, limit)
	if m.GetPlaylistsFunc != nil {
		return m.GetPlaylistsFunc(ctx, accessToken, limit)
	}
	return []domain.SpotifyPlaylist{{Name: "sad girl autumn"}}, nil
}

// MockTextGenerator implements output.TextGenerator for testing
type MockTextGenerator struct {
	GenerateTextFunc func(ctx context.Context, prompt string) (string, error)

	LastPrompt string
	Calls      int
}

func (m *MockTextGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.LastPrompt = prompt
	m.Calls++
	if m.GenerateTextFunc != nil {
		return m.GenerateTextFunc(ctx, prompt)
	}
	return `{"roasts":[{"title":"t","text":"x","memeTag":"m","vibeEmoji":"🔥"}]}`, nil
}
