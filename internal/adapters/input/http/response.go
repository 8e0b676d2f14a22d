package http

import (
	"net/http"

	"getcooked/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// ErrorResponse struct - Short error body returned by the auth and roast endpoints
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type (
	// RoastItemResponse struct - HTTP response DTO for a single roast
	RoastItemResponse struct {
		Title     string `json:"title"`
		Text      string `json:"text"`
		MemeTag   string `json:"memeTag"`
		VibeEmoji string `json:"vibeEmoji,omitempty"`
	}

	// SummaryResponse struct - HTTP response DTO for the aggregated profile
	SummaryResponse struct {
		ProfileName  string   `json:"profileName"`
		TopArtists   []string `json:"topArtists"`
		TopTracks    []string `json:"topTracks"`
		RecentTracks []string `json:"recentTracks"`
		Playlists    []string `json:"playlists"`
		VibeGuess    string   `json:"vibeGuess"`
	}

	// RoastResponse struct - HTTP response DTO for GET /roast
	RoastResponse struct {
		Roasts  []RoastItemResponse `json:"roasts"`
		Summary SummaryResponse     `json:"summary"`
	}
)

// newRoastResponse converts the domain result, keeping every list non-nil so it encodes as []
func newRoastResponse(result *domain.RoastResult) RoastResponse {
	roasts := make([]RoastItemResponse, 0, len(result.Roasts))
	for _, item := range result.Roasts {
		roasts = append(roasts, RoastItemResponse{
			Title:     item.Title,
			Text:      item.Text,
			MemeTag:   item.MemeTag,
			VibeEmoji: item.VibeEmoji,
		})
	}

	return RoastResponse{
		Roasts: roasts,
		Summary: SummaryResponse{
			ProfileName:  result.Summary.DisplayName,
			TopArtists:   nonNil(result.Summary.TopArtists),
			TopTracks:    nonNil(result.Summary.TopTracks),
			RecentTracks: nonNil(result.Summary.RecentTracks),
			Playlists:    nonNil(result.Summary.Playlists),
			VibeGuess:    result.Summary.VibeGuess,
		},
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
