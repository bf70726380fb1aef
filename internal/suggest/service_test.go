package suggest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/shivansh-2003/color-UI/internal/palette"
	"github.com/shivansh-2003/color-UI/internal/preview"
)

type stubExtractor struct {
	colors []string
	err    error
	called bool
}

func (s *stubExtractor) ExtractColors(_ context.Context, _ []byte) ([]string, error) {
	s.called = true
	return s.colors, s.err
}

type stubSuggester struct {
	colors []string
	err    error
}

func (s *stubSuggester) SuggestColors(_ context.Context, _ string) ([]string, error) {
	return s.colors, s.err
}

type stubRenderer struct {
	result preview.Preview
	err    error
	calls  int
}

func (s *stubRenderer) Render(_ context.Context, _ palette.Organized, _ preview.Template) (preview.Preview, error) {
	s.calls++
	return s.result, s.err
}

func TestServiceSuggest(t *testing.T) {
	svc := Service{
		Extractor: &stubExtractor{colors: []string{"#112233", "#445566"}},
		Suggester: &stubSuggester{colors: []string{"#ffffff", "#000000", "#112233"}},
	}

	result := svc.Suggest(context.Background(), []byte("img"), "a calm note-taking app", preview.TemplateWebsite, false)

	if !reflect.DeepEqual(result.ImageBased, []string{"#112233", "#445566"}) {
		t.Errorf("image_based = %v", result.ImageBased)
	}
	if result.OrganizedPalette.Primary != "#112233" {
		t.Errorf("primary = %s, want #112233", result.OrganizedPalette.Primary)
	}
	// Union drops the duplicate #112233 from the description sequence.
	wantAll := []string{"#112233", "#445566", "#ffffff", "#000000"}
	if !reflect.DeepEqual(result.AllColors, wantAll) {
		t.Errorf("all_colors = %v, want %v", result.AllColors, wantAll)
	}
	if result.Preview != nil {
		t.Error("preview present without being requested")
	}
}

func TestServiceAbsorbsAdapterFailures(t *testing.T) {
	svc := Service{
		Extractor: &stubExtractor{err: errors.New("network down")},
		Suggester: &stubSuggester{err: errors.New("provider 500")},
	}

	result := svc.Suggest(context.Background(), []byte("img"), "desc", preview.TemplateWebsite, false)

	if len(result.ImageBased) != 0 || len(result.DescriptionBased) != 0 {
		t.Errorf("expected empty sequences, got %v / %v", result.ImageBased, result.DescriptionBased)
	}
	if result.ImageBased == nil || result.DescriptionBased == nil || result.AllColors == nil {
		t.Error("sequences must be non-nil for JSON encoding")
	}
	if result.OrganizedPalette.Primary != palette.DefaultPrimary {
		t.Errorf("primary = %s, want default", result.OrganizedPalette.Primary)
	}
}

func TestServicePreviewFallbackChain(t *testing.T) {
	ai := &stubRenderer{err: errors.New("model unavailable")}
	fallback := &stubRenderer{result: preview.Preview{ImageData: "ZGF0YQ==", MIMEType: "image/png"}}

	svc := Service{
		Extractor:        &stubExtractor{},
		Suggester:        &stubSuggester{},
		AIRenderer:       ai,
		FallbackRenderer: fallback,
	}

	result := svc.Suggest(context.Background(), []byte("img"), "desc", preview.TemplateMobile, true)

	if ai.calls != 1 {
		t.Errorf("AI renderer calls = %d, want 1", ai.calls)
	}
	if fallback.calls != 1 {
		t.Errorf("fallback renderer calls = %d, want 1", fallback.calls)
	}
	if result.Preview == nil || result.Preview.ImageData != "ZGF0YQ==" {
		t.Errorf("preview = %+v, want fallback output", result.Preview)
	}
}

func TestServicePreviewTotalFailure(t *testing.T) {
	svc := Service{
		Extractor:        &stubExtractor{},
		Suggester:        &stubSuggester{},
		AIRenderer:       &stubRenderer{err: errors.New("down")},
		FallbackRenderer: &stubRenderer{err: errors.New("also down")},
	}

	result := svc.Suggest(context.Background(), []byte("img"), "desc", preview.TemplateWebsite, true)
	if result.Preview != nil {
		t.Errorf("preview = %+v, want none", result.Preview)
	}
}
