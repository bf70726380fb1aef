package suggest

import "github.com/shivansh-2003/color-UI/internal/palette"

// Analysis compares an assigned role color against the positionally
// corresponding description-based suggestion.
type Analysis struct {
	Color          string  `json:"color"`
	SuggestedColor *string `json:"suggested_color"`
	IsPerfectMatch bool    `json:"is_perfect_match"`
	Reason         string  `json:"reason"`
}

const perfectMatchReason = "Perfect match! No change needed"

// analysisRoles fixes the role order and the positional index into the
// description-based sequence, along with the advisory reason used when
// the colors differ.
var analysisRoles = []struct {
	role   string
	index  int
	reason string
}{
	{"primary", 0, "The suggested color better aligns with your project's theme and enhances user experience"},
	{"secondary", 1, "The suggested color provides better contrast and visual hierarchy"},
	{"accent", 2, "The suggested color creates better visual interest and highlights important elements"},
	{"background", 3, "The suggested color improves readability and reduces eye strain"},
	{"text", 4, "The suggested color ensures better readability and accessibility"},
}

// BuildAnalysis derives the per-role comparison between the organized
// palette and the description-based sequence. Positions beyond the end
// of the sequence compare against no suggestion.
func BuildAnalysis(organized palette.Organized, descriptionColors []string) map[string]Analysis {
	out := make(map[string]Analysis, len(analysisRoles))
	for _, entry := range analysisRoles {
		assigned := organized.Role(entry.role)

		var suggested *string
		if entry.index < len(descriptionColors) {
			s := descriptionColors[entry.index]
			suggested = &s
		}

		match := suggested != nil && assigned == *suggested
		analysis := Analysis{
			Color:          assigned,
			IsPerfectMatch: match,
			Reason:         entry.reason,
		}
		if match {
			analysis.Reason = perfectMatchReason
		} else {
			analysis.SuggestedColor = suggested
		}
		out[entry.role] = analysis
	}
	return out
}

// AdditionalNotes returns the fixed advisory strings attached to every
// successful response.
func AdditionalNotes() []string {
	return []string{
		"All suggested colors have been checked for accessibility compliance",
		"The color palette maintains proper contrast ratios for better readability",
		"Colors are chosen to create a harmonious and professional appearance",
		"Consider testing these colors in different lighting conditions",
	}
}
