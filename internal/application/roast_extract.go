package application

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"getcooked/internal/domain"
)

// fencePattern matches a reply wrapped in a markdown code fence with an optional language tag
var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_+-]*[ \t]*\r?\n?(.*?)\r?\n?[ \t]*```$")

type roastEnvelope struct {
	Roasts []domain.RoastItem `json:"roasts"`
}

// StripCodeFence removes surrounding whitespace and a wrapping ``` fence, if any
func StripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return text
}

// ParseRoasts strictly parses model output into roast items.
// Text that is not JSON fails with ErrOutputParseFailure. Valid JSON without an
// object-typed roasts field (a missing field, null, or a non-object document) yields
// an empty list. A roasts field of the wrong shape also fails.
func ParseRoasts(raw string) ([]domain.RoastItem, error) {
	text := StripCodeFence(raw)
	if text == "" {
		text = "{}"
	}

	var document json.RawMessage
	if err := json.Unmarshal([]byte(text), &document); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrOutputParseFailure, err)
	}

	var fields map[string]json.RawMessage
	if document[0] != '{' || json.Unmarshal(document, &fields) != nil {
		return []domain.RoastItem{}, nil
	}

	var roasts []domain.RoastItem
	if value, ok := fields["roasts"]; ok {
		if err := json.Unmarshal(value, &roasts); err != nil {
			return nil, fmt.Errorf("%w: roasts: %v", domain.ErrOutputParseFailure, err)
		}
	}

	if roasts == nil {
		return []domain.RoastItem{}, nil
	}
	return roasts, nil
}

// extractRoasts always returns a usable list: when the output cannot be parsed it is a single
// fallback roast holding the raw text, and the parse error is returned alongside for logging.
func extractRoasts(raw string) ([]domain.RoastItem, error) {
	roasts, err := ParseRoasts(raw)
	if err != nil {
		return []domain.RoastItem{domain.FallbackRoast(raw)}, err
	}
	return roasts, nil
}
