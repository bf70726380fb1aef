package suggest

import (
	"testing"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

func TestBuildAnalysis(t *testing.T) {
	organized := palette.Organize(
		[]string{"#112233", "#445566"},
		[]string{"#112233", "#00ff00", "#ff00ff"},
	)
	// accent rule: description[0] equals primary, no image[2], so accent
	// falls back to the default.
	analysis := BuildAnalysis(organized, []string{"#112233", "#00ff00", "#ff00ff"})

	if len(analysis) != 5 {
		t.Fatalf("got %d roles, want 5", len(analysis))
	}

	primary := analysis["primary"]
	if !primary.IsPerfectMatch {
		t.Error("primary should be a perfect match")
	}
	if primary.SuggestedColor != nil {
		t.Errorf("matched primary carries suggested color %v", *primary.SuggestedColor)
	}
	if primary.Reason != perfectMatchReason {
		t.Errorf("primary reason = %q", primary.Reason)
	}

	secondary := analysis["secondary"]
	if secondary.IsPerfectMatch {
		t.Error("secondary should not match")
	}
	if secondary.SuggestedColor == nil || *secondary.SuggestedColor != "#00ff00" {
		t.Errorf("secondary suggested = %v, want #00ff00", secondary.SuggestedColor)
	}

	// Positions 3 and 4 do not exist in the suggestion sequence.
	for _, role := range []string{"background", "text"} {
		entry := analysis[role]
		if entry.SuggestedColor != nil {
			t.Errorf("%s suggested = %v, want nil", role, *entry.SuggestedColor)
		}
		if entry.IsPerfectMatch {
			t.Errorf("%s should not be a perfect match without a suggestion", role)
		}
	}
}

func TestBuildAnalysisEmptySuggestions(t *testing.T) {
	organized := palette.Organize(nil, nil)
	analysis := BuildAnalysis(organized, nil)

	for role, entry := range analysis {
		if entry.Color == "" {
			t.Errorf("%s has empty color", role)
		}
		if entry.SuggestedColor != nil {
			t.Errorf("%s has suggestion with empty input", role)
		}
	}
}

func TestAdditionalNotes(t *testing.T) {
	notes := AdditionalNotes()
	if len(notes) != 4 {
		t.Fatalf("got %d notes, want 4", len(notes))
	}
}
