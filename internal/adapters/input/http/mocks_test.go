package http

import (
	"context"
	"time"

	"getcooked/internal/domain"
)

// MockAuthService is a mock implementation of input.AuthService
type MockAuthService struct {
	BeginFunc    func(ctx context.Context) (*domain.AuthorizationRedirect, error)
	CompleteFunc func(ctx context.Context, request domain.CallbackRequest, storedState string) (*domain.TokenPair, error)

	CompleteCalls   int
	LastRequest     domain.CallbackRequest
	LastStoredState string
}

func (m *MockAuthService) BeginAuthorization(ctx context.Context) (*domain.AuthorizationRedirect, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &domain.AuthorizationRedirect{
		URL:      "https://accounts.spotify.com/authorize?state=nonce",
		State:    "nonce",
		StateTTL: 10 * time.Minute,
	}, nil
}

func (m *MockAuthService) CompleteAuthorization(ctx context.Context, request domain.CallbackRequest, storedState string) (*domain.TokenPair, error) {
	m.CompleteCalls++
	m.LastRequest = request
	m.LastStoredState = storedState
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, request, storedState)
	}
	return &domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil
}

// MockRoastService is a mock implementation of input.RoastService
type MockRoastService struct {
	RoastFunc func(ctx context.Context, session domain.Session) (*domain.RoastResult, error)

	Calls       int
	LastSession domain.Session
}

func (m *MockRoastService) Roast(ctx context.Context, session domain.Session) (*domain.RoastResult, error) {
	m.Calls++
	m.LastSession = session
	if m.RoastFunc != nil {
		return m.RoastFunc(ctx, session)
	}
	return &domain.RoastResult{
		Roasts:  []domain.RoastItem{{Title: "t", Text: "x", MemeTag: "m"}},
		Summary: domain.ProfileSummary{DisplayName: "Ari", TopArtists: []string{"Taylor Swift"}, VibeGuess: "heartbreak pop"},
	}, nil
}
