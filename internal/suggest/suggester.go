// Package suggest orchestrates the color suggestion pipeline and its
// HTTP surface.
package suggest

import (
	"context"
	"fmt"

	"github.com/shivansh-2003/color-UI/internal/llm"
	"github.com/shivansh-2003/color-UI/internal/palette"
)

const suggestionSystemPrompt = "You are a UI/UX design expert specializing in color theory and accessibility. Your task is to suggest the most appropriate UI colors based on project descriptions."

const suggestionUserTemplate = `Consider this project description:

"%s"

Based on this description, suggest the most appropriate UI colors in hex format.
These colors should create a harmonious palette that enhances user experience and matches the project's theme.

Return ONLY a JSON array of hex color codes (e.g., ["#3498db", "#2ecc71"]) with no additional text or explanation.
Include 5-7 colors that work well together:
- Primary brand color
- Secondary color
- Accent color
- Background color
- Text color
- 1-2 additional supporting colors

Ensure the palette has appropriate contrast for accessibility and follows color theory principles.`

// Suggester turns a project description into a ranked color sequence.
type Suggester interface {
	SuggestColors(ctx context.Context, description string) ([]string, error)
}

// GroqSuggester implements Suggester on top of a chat-completion client.
type GroqSuggester struct {
	client llm.Client
}

// NewGroqSuggester constructs a suggester backed by the given chat client.
func NewGroqSuggester(client llm.Client) *GroqSuggester {
	return &GroqSuggester{client: client}
}

// SuggestColors asks the language model for a palette matching the
// description and parses the reply into hex colors.
func (s *GroqSuggester) SuggestColors(ctx context.Context, description string) ([]string, error) {
	if s == nil || s.client == nil {
		return nil, fmt.Errorf("suggest: client unavailable")
	}

	content, err := s.client.ChatCompletion(ctx, []llm.ChatMessage{
		{Role: "system", Content: suggestionSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(suggestionUserTemplate, description)},
	}, 0.7)
	if err != nil {
		return nil, err
	}
	return palette.ParseReply(content), nil
}
