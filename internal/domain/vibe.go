package domain

import "strings"

// VibeRule maps artist-name keywords to a vibe label
type VibeRule struct {
	Keywords []string
	Label    string
}

// GenericVibe is the catch-all label when no rule matches
const GenericVibe = "mixed bag of Spotify-core, nostalgia, and algorithm leftovers"

// VibeTable is checked in order; the first rule with a matching keyword wins.
var VibeTable = []VibeRule{
	{Keywords: []string{"taylor"}, Label: "heartbreak pop, delulu main character arc"},
	{Keywords: []string{"weeknd"}, Label: "late night neon city with unresolved issues"},
	{Keywords: []string{"arijit", "darshan"}, Label: "bollywood romantic + sad boy/girl core"},
	{Keywords: []string{"drake", "travis"}, Label: "rap / trap gym bro trying to be sigma"},
}

// ClassifyVibe guesses a vibe label from top artist names.
// Matching is a case-insensitive substring search over all names joined together.
func ClassifyVibe(topArtists []string) string {
	haystack := strings.ToLower(strings.Join(topArtists, " "))
	for _, rule := range VibeTable {
		for _, keyword := range rule.Keywords {
			if strings.Contains(haystack, keyword) {
				return rule.Label
			}
		}
	}
	return GenericVibe
}
