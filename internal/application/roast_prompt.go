package application

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"getcooked/internal/domain"
)

var roastPromptTemplate = template.Must(template.New("roast").Funcs(template.FuncMap{
	"list": joinOrNone,
}).Parse(`
You are a savage but SAFE roast bot. You brutally roast a user's music taste
based on their Spotify data. Rules:
- NO slurs, hate speech, or attacking protected groups.
- Only roast their music taste and light personality stereotypes inferred from it.
- Tone: chaotic Gen-Z, meme-heavy, like viral Twitter / Instagram / TikTok captions.

User display name: {{.Summary.DisplayName}}

Top artists:
{{list .Summary.TopArtists ", "}}

Top tracks:
{{list .Summary.TopTracks "; "}}

Recently played:
{{list .Summary.RecentTracks "; "}}

Playlists:
{{list .Summary.Playlists ", "}}

Your guess of their vibe:
{{.VibeGuess}}

Now generate EXACTLY {{.Count}} roasts.

Return JSON ONLY in this exact format:

{
  "roasts": [
    {
      "title": "short spicy title",
      "text": "2-4 sentence roast, very funny, refer to specific artists/songs if possible.",
      "memeTag": "short meme-style label like 'delulu swiftie', '2016 tumblr survivor'",
      "vibeEmoji": "one or two emojis that match the vibe"
    }
  ]
}

No explanations, no extra text, no markdown code fences, just valid JSON.
`))

type roastPromptData struct {
	Summary   domain.ProfileSummary
	VibeGuess string
	Count     int
}

// BuildPrompt renders the roast prompt for a summary and vibe label
func BuildPrompt(summary domain.ProfileSummary, vibeGuess string, count int) (string, error) {
	if count <= 0 {
		count = domain.DefaultRoastCount
	}

	var buf bytes.Buffer
	err := roastPromptTemplate.Execute(&buf, roastPromptData{
		Summary:   summary,
		VibeGuess: vibeGuess,
		Count:     count,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render roast prompt: %w", err)
	}

	return buf.String(), nil
}

func joinOrNone(items []string, sep string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, sep)
}
