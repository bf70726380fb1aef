// Package vision extracts UI color palettes from screenshots via
// Google's Generative Language API.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

const (
	// MaxImageBytes bounds uploads accepted for extraction.
	MaxImageBytes = 7 * 1024 * 1024

	defaultVisionModel = "gemini-1.5-flash"
	defaultBaseURL     = "https://generativelanguage.googleapis.com/v1beta"
)

const extractionPrompt = `Analyze this UI/app image and extract the main color palette.
Return ONLY a JSON array of hex color codes (e.g., ["#3498db", "#2ecc71"]) with no additional text.
Extract only the most dominant and important colors for the UI design (maximum 6 colors).
Focus on extracting colors that would create a harmonious and aesthetically pleasing UI palette.`

// Extractor turns image bytes into a ranked color sequence.
type Extractor interface {
	ExtractColors(ctx context.Context, data []byte) ([]string, error)
}

// GeminiExtractor implements Extractor using Gemini's vision models.
type GeminiExtractor struct {
	apiKey      string
	model       string
	baseURL     string
	client      *http.Client
	tokenSource oauth2.TokenSource
}

// NewGeminiExtractor constructs a Gemini-powered color extractor. When a
// token source is provided it is used instead of the API-key query
// parameter (service account auth).
func NewGeminiExtractor(apiKey, model string, timeout time.Duration, tokenSource oauth2.TokenSource) *GeminiExtractor {
	model = normalizeModel(model)
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &GeminiExtractor{
		apiKey:      apiKey,
		model:       model,
		baseURL:     defaultBaseURL,
		client:      &http.Client{Timeout: timeout},
		tokenSource: tokenSource,
	}
}

// ExtractColors sends the image to Gemini with the fixed extraction
// instruction and parses the reply into hex colors. The image is
// normalized (RGB, both dimensions capped at 1024px, JPEG) before the
// call.
func (g *GeminiExtractor) ExtractColors(ctx context.Context, data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("vision: empty image data")
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("vision: image exceeds %d bytes", MaxImageBytes)
	}

	normalized, err := prepareImage(data)
	if err != nil {
		return nil, fmt.Errorf("vision: prepare image: %w", err)
	}

	reply, err := g.generate(ctx, normalized)
	if err != nil {
		return nil, err
	}
	return palette.ParseReply(reply), nil
}

func (g *GeminiExtractor) generate(ctx context.Context, jpegData []byte) (string, error) {
	payload := map[string]any{
		"contents": []map[string]any{
			{
				"role": "user",
				"parts": []map[string]any{
					{"text": extractionPrompt},
					{
						"inline_data": map[string]string{
							"mime_type": "image/jpeg",
							"data":      base64.StdEncoding.EncodeToString(jpegData),
						},
					},
				},
			},
		},
		"generationConfig": map[string]any{
			"temperature": 0.2,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("vision: marshal payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	if g.tokenSource == nil {
		if strings.TrimSpace(g.apiKey) == "" {
			return "", fmt.Errorf("vision: missing API key or service account credentials")
		}
		endpoint = fmt.Sprintf("%s?key=%s", endpoint, url.QueryEscape(g.apiKey))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("vision: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if g.tokenSource != nil {
		token, err := g.tokenSource.Token()
		if err != nil {
			return "", fmt.Errorf("vision: fetch oauth token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("vision: perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var failure struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return "", fmt.Errorf("vision: status %d: %s", resp.StatusCode, failure.Error.Message)
	}

	var completion struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("vision: decode response: %w", err)
	}

	if len(completion.Candidates) == 0 || len(completion.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("vision: empty response")
	}

	var parts []string
	for _, part := range completion.Candidates[0].Content.Parts {
		if trimmed := strings.TrimSpace(part.Text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, "\n"), nil
}

func normalizeModel(model string) string {
	clean := strings.TrimSpace(model)
	clean = strings.TrimPrefix(clean, "models/")
	if clean == "" {
		return defaultVisionModel
	}
	return clean
}
