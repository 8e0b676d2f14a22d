package domain

// Summary limits
const (
	MaxTopArtists   = 10
	MaxTopTracks    = 10
	MaxRecentTracks = 15
	MaxPlaylists    = 10

	// RecentlyPlayedFetchLimit is how many plays are requested before trimming to MaxRecentTracks
	RecentlyPlayedFetchLimit = 20

	// UnknownName replaces absent nested names such as a track's primary artist
	UnknownName = "Unknown"

	// DefaultDisplayName is used when the profile carries no display name
	DefaultDisplayName = "this user"

	// DefaultRoastCount is how many roasts the model is asked for
	DefaultRoastCount = 5
)

// Fallback roast sentinel values, used when the model reply cannot be parsed
const (
	FallbackRoastTitle   = "Gemini had a meltdown"
	FallbackRoastMemeTag = "ai_scuffed"
	FallbackRoastEmoji   = "🤖🔥"
)

// ProfileSummary is the compact view of a user's listening data fed into the prompt
type ProfileSummary struct {
	DisplayName  string   `json:"profileName"`
	TopArtists   []string `json:"topArtists"`
	TopTracks    []string `json:"topTracks"`
	RecentTracks []string `json:"recentTracks"`
	Playlists    []string `json:"playlists"`
	VibeGuess    string   `json:"vibeGuess"`
}

// RoastItem is one card of the roast carousel
type RoastItem struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	MemeTag   string `json:"memeTag"`
	VibeEmoji string `json:"vibeEmoji,omitempty"`
}

// RoastResult is what the roast endpoint returns
type RoastResult struct {
	Roasts  []RoastItem    `json:"roasts"`
	Summary ProfileSummary `json:"summary"`
}

// FallbackRoast builds the placeholder item that carries unparseable model output verbatim
func FallbackRoast(rawText string) RoastItem {
	return RoastItem{
		Title:     FallbackRoastTitle,
		Text:      rawText,
		MemeTag:   FallbackRoastMemeTag,
		VibeEmoji: FallbackRoastEmoji,
	}
}
