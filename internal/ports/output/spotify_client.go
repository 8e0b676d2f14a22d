package output

import (
	"context"

	"getcooked/internal/domain"
)

// SpotifyClient interface - Output port
// Defines the five bearer-authenticated reads the roast needs.
// Non-success responses are returned as *domain.UpstreamError.
type SpotifyClient interface {
	GetCurrentUser(ctx context.Context, accessToken string) (*domain.SpotifyUser, error)
	GetTopArtists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyArtist, error)
	GetTopTracks(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyTrack, error)
	GetRecentlyPlayed(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlayHistory, error)
	GetPlaylists(ctx context.Context, accessToken string, limit int) ([]domain.SpotifyPlaylist, error)
}
