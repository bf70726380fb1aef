package suggest

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/shivansh-2003/color-UI/internal/palette"
	"github.com/shivansh-2003/color-UI/internal/preview"
	"github.com/shivansh-2003/color-UI/internal/vision"
)

// Result is the combined pipeline output.
type Result struct {
	ImageBased       []string          `json:"image_based"`
	DescriptionBased []string          `json:"description_based"`
	OrganizedPalette palette.Organized `json:"organized_palette"`
	AllColors        []string          `json:"all_colors"`
	Preview          *preview.Preview  `json:"preview,omitempty"`
}

// Service runs the extraction and suggestion adapters, organizes the
// palette and optionally renders a preview. Adapter failures are
// absorbed into empty color sequences; the pipeline itself never fails.
type Service struct {
	Extractor vision.Extractor
	Suggester Suggester
	// AIRenderer is tried first for previews when set; FallbackRenderer
	// covers its failures.
	AIRenderer       preview.Renderer
	FallbackRenderer preview.Renderer
}

// Suggest executes the full pipeline for one request. The two adapter
// calls are independent and issued concurrently.
func (s Service) Suggest(ctx context.Context, imageData []byte, description string, template preview.Template, withPreview bool) Result {
	var imageColors, descriptionColors []string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		colors, err := s.extract(gctx, imageData)
		imageColors = colors
		return err
	})
	g.Go(func() error {
		colors, err := s.suggestColors(gctx, description)
		descriptionColors = colors
		return err
	})
	_ = g.Wait() // adapter errors already absorbed

	organized := palette.Organize(imageColors, descriptionColors)

	result := Result{
		ImageBased:       imageColors,
		DescriptionBased: descriptionColors,
		OrganizedPalette: organized,
		AllColors:        palette.Union(imageColors, descriptionColors),
	}

	if withPreview {
		if rendered := s.renderPreview(ctx, organized, template); rendered != nil {
			result.Preview = rendered
		}
	}
	return result
}

// extract is best-effort: transport and provider failures degrade to an
// empty sequence.
func (s Service) extract(ctx context.Context, imageData []byte) ([]string, error) {
	if s.Extractor == nil {
		return []string{}, nil
	}
	colors, err := s.Extractor.ExtractColors(ctx, imageData)
	if err != nil {
		log.Printf("color extraction failed: %v", err)
		return []string{}, nil
	}
	if colors == nil {
		colors = []string{}
	}
	return colors, nil
}

func (s Service) suggestColors(ctx context.Context, description string) ([]string, error) {
	if s.Suggester == nil {
		return []string{}, nil
	}
	colors, err := s.Suggester.SuggestColors(ctx, description)
	if err != nil {
		log.Printf("color suggestion failed: %v", err)
		return []string{}, nil
	}
	if colors == nil {
		colors = []string{}
	}
	return colors, nil
}

// renderPreview tries the AI renderer first and falls back to the
// deterministic one. Total failure yields no preview, not an error.
func (s Service) renderPreview(ctx context.Context, organized palette.Organized, template preview.Template) *preview.Preview {
	if s.AIRenderer != nil {
		rendered, err := s.AIRenderer.Render(ctx, organized, template)
		if err == nil {
			return &rendered
		}
		log.Printf("AI preview failed, using fallback: %v", err)
	}
	if s.FallbackRenderer == nil {
		return nil
	}
	rendered, err := s.FallbackRenderer.Render(ctx, organized, template)
	if err != nil {
		log.Printf("fallback preview failed: %v", err)
		return nil
	}
	return &rendered
}
