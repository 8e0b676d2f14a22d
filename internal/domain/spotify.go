package domain

// Spotify resource names, used in UpstreamError and logs
const (
	ResourceProfile        = "profile"
	ResourceTopArtists     = "top_artists"
	ResourceTopTracks      = "top_tracks"
	ResourceRecentlyPlayed = "recently_played"
	ResourcePlaylists      = "playlists"
)

// SpotifyUser represents the current user's profile
type SpotifyUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Country     string `json:"country"`
}

// SpotifyArtist represents an artist object (simplified or full)
type SpotifyArtist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
}

// SpotifyTrack represents a track object
type SpotifyTrack struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Artists []SpotifyArtist `json:"artists"`
}

// SpotifyPlayHistory represents one entry of the recently played list.
// Track may be null for local or removed tracks.
type SpotifyPlayHistory struct {
	Track    *SpotifyTrack `json:"track"`
	PlayedAt string        `json:"played_at"`
}

// SpotifyPlaylist represents a simplified playlist object
type SpotifyPlaylist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Paging is the envelope Spotify wraps list responses in
type Paging[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}
