package preview

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

const defaultImageModel = "gemini-2.5-flash-image"

var imageURLPattern = regexp.MustCompile(`https?://\S+\.(?:png|jpe?g|webp)`)

// GeminiRenderer asks Gemini to synthesize a photorealistic mockup
// using the exact palette colors. It is best-effort: callers are
// expected to fall back to the deterministic renderer on any error.
type GeminiRenderer struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *http.Client
}

// NewGeminiRenderer constructs a renderer able to request inline images.
func NewGeminiRenderer(apiKey, model string, timeout time.Duration) *GeminiRenderer {
	if strings.TrimSpace(model) == "" {
		model = defaultImageModel
	}
	model = strings.TrimPrefix(strings.TrimSpace(model), "models/")
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiRenderer{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Render requests a mockup image for the palette. Older response shapes
// that reply with an image URL instead of inline bytes are downloaded.
func (g *GeminiRenderer) Render(ctx context.Context, p palette.Organized, template Template) (Preview, error) {
	if g == nil || strings.TrimSpace(g.apiKey) == "" {
		return Preview{}, fmt.Errorf("preview: renderer unavailable")
	}

	childCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	client, err := genai.NewClient(childCtx, &genai.ClientConfig{
		APIKey: g.apiKey,
	})
	if err != nil {
		return Preview{}, fmt.Errorf("preview: create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(childCtx, g.model, genai.Text(mockupPrompt(p, template)), nil)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: render failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return Preview{}, fmt.Errorf("preview: render returned no candidates")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			mime := part.InlineData.MIMEType
			if strings.TrimSpace(mime) == "" {
				mime = "image/png"
			}
			return Preview{
				ImageData: base64.StdEncoding.EncodeToString(part.InlineData.Data),
				MIMEType:  mime,
			}, nil
		}
		if url := imageURLPattern.FindString(part.Text); url != "" {
			return g.download(childCtx, url)
		}
	}
	return Preview{}, fmt.Errorf("preview: render returned no image data")
}

func (g *GeminiRenderer) download(ctx context.Context, url string) (Preview, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: image request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return Preview{}, fmt.Errorf("preview: fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return Preview{}, fmt.Errorf("preview: image status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return Preview{}, fmt.Errorf("preview: read image: %w", err)
	}
	if len(data) == 0 {
		return Preview{}, fmt.Errorf("preview: empty image download")
	}

	mime := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "image/") {
		mime = "image/png"
	}
	return Preview{
		ImageData: base64.StdEncoding.EncodeToString(data),
		MIMEType:  mime,
	}, nil
}

// mockupPrompt embeds the exact five hex colors plus a template-specific
// instruction block.
func mockupPrompt(p palette.Organized, template Template) string {
	var layout string
	switch template {
	case TemplateMobile:
		layout = "a modern mobile app screen with a colored header bar, stacked content cards, a bottom navigation bar and a floating action button"
	case TemplateDashboard:
		layout = "an analytics dashboard with a top navigation header, a sidebar, stat cards and chart placeholders"
	default:
		layout = "a marketing website landing page with a navigation header, a sidebar, content cards and call-to-action buttons"
	}

	return fmt.Sprintf(`Generate a photorealistic UI mockup image of %s.
Use EXACTLY this color palette and no other colors:
- primary: %s (headers, buttons)
- secondary: %s (sidebar, navigation, hover states)
- accent: %s (highlights, call-to-action elements)
- background: %s (page background)
- text: %s (all text content)
Render a clean, professional design. Do not include any watermarks or captions.`,
		layout, p.Primary, p.Secondary, p.Accent, p.Background, p.Text)
}
