package palette

import (
	"encoding/json"
	"regexp"
	"strings"
)

var hexScanPattern = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)

// ParseReply extracts a color sequence from a free-text model reply.
// It first looks for a JSON array literal anywhere in the text and
// decodes it; when that fails it falls back to scanning the raw text
// for hex color substrings. Tokens are normalized (leading '#',
// lowercased) and invalid ones discarded. A reply with no usable
// colors yields an empty sequence, never an error.
func ParseReply(text string) []string {
	tokens := jsonArrayTokens(text)
	if tokens == nil {
		tokens = hexScanPattern.FindAllString(text, -1)
	}

	colors := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if normalized, ok := Normalize(tok); ok {
			colors = append(colors, normalized)
		}
	}
	return colors
}

func jsonArrayTokens(text string) []string {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil
	}
	var tokens []string
	if err := json.Unmarshal([]byte(text[start:end+1]), &tokens); err != nil {
		return nil
	}
	return tokens
}
