// Package palette assigns UI roles to ranked color sequences.
package palette

import (
	"regexp"
	"strconv"
	"strings"
)

// Default role colors used when the input sequences cannot fill a slot.
const (
	DefaultPrimary    = "#3498db"
	DefaultSecondary  = "#2ecc71"
	DefaultAccent     = "#e74c3c"
	DefaultBackground = "#ffffff"
	DefaultText       = "#333333"
)

// Brightness thresholds for background/text candidate selection.
const (
	lightThreshold = 200
	darkThreshold  = 80
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHex reports whether s is a #-prefixed 6-digit hex color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Normalize prepends a missing '#' and lowercases the token. It returns
// false when the result is not a valid hex color.
func Normalize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s != "" && !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if !hexPattern.MatchString(s) {
		return "", false
	}
	return strings.ToLower(s), true
}

// Brightness computes perceptual brightness for a hex color using the
// weighted luma formula (R*299 + G*587 + B*114) / 1000. Values range
// 0 (black) to 255 (white). Invalid colors report 0.
func Brightness(hex string) float64 {
	if !hexPattern.MatchString(hex) {
		return 0
	}
	r, _ := strconv.ParseInt(hex[1:3], 16, 32)
	g, _ := strconv.ParseInt(hex[3:5], 16, 32)
	b, _ := strconv.ParseInt(hex[5:7], 16, 32)
	return float64(r*299+g*587+b*114) / 1000
}

// UIComponents maps fixed UI component slots to colors.
type UIComponents struct {
	Button         string `json:"button"`
	ButtonHover    string `json:"button_hover"`
	Header         string `json:"header"`
	CardBackground string `json:"card_background"`
	Border         string `json:"border"`
}

// ComponentRecommendation pairs a humanized component name with its color.
type ComponentRecommendation struct {
	Component string `json:"component"`
	Color     string `json:"color"`
}

// Recommendations returns all component assignments in fixed order with
// humanized names (underscores to spaces, first letter capitalized).
func (u UIComponents) Recommendations() []ComponentRecommendation {
	return []ComponentRecommendation{
		{Component: "Button", Color: u.Button},
		{Component: "Button hover", Color: u.ButtonHover},
		{Component: "Header", Color: u.Header},
		{Component: "Card background", Color: u.CardBackground},
		{Component: "Border", Color: u.Border},
	}
}

// Organized is the role-to-color assignment produced by Organize.
type Organized struct {
	Primary      string       `json:"primary"`
	Secondary    string       `json:"secondary"`
	Accent       string       `json:"accent"`
	Background   string       `json:"background"`
	Text         string       `json:"text"`
	Additional   []string     `json:"additional"`
	UIComponents UIComponents `json:"ui_components"`
}

// Role returns the color assigned to the named role, or "" for an
// unknown role name.
func (o Organized) Role(name string) string {
	switch name {
	case "primary":
		return o.Primary
	case "secondary":
		return o.Secondary
	case "accent":
		return o.Accent
	case "background":
		return o.Background
	case "text":
		return o.Text
	}
	return ""
}

// Organize deterministically assigns UI roles given two ranked color
// sequences. Image colors take priority for primary/secondary; the
// top description color is preferred for accent when it is distinct.
// Background and text come from brightness classification over the
// concatenation of both sequences. Organize never fails: short or
// empty inputs degrade to fixed defaults.
func Organize(imageColors, descriptionColors []string) Organized {
	all := make([]string, 0, len(imageColors)+len(descriptionColors))
	all = append(all, imageColors...)
	all = append(all, descriptionColors...)

	out := Organized{
		Primary:    DefaultPrimary,
		Secondary:  DefaultSecondary,
		Accent:     DefaultAccent,
		Background: DefaultBackground,
		Text:       DefaultText,
	}

	if len(imageColors) > 0 {
		out.Primary = imageColors[0]
	} else if len(descriptionColors) > 0 {
		out.Primary = descriptionColors[0]
	}

	if len(imageColors) > 1 {
		out.Secondary = imageColors[1]
	} else if len(descriptionColors) > 1 {
		out.Secondary = descriptionColors[1]
	}

	switch {
	case len(descriptionColors) > 0 && descriptionColors[0] != out.Primary && descriptionColors[0] != out.Secondary:
		out.Accent = descriptionColors[0]
	case len(imageColors) > 2:
		out.Accent = imageColors[2]
	}

	for _, c := range all {
		if Brightness(c) > lightThreshold {
			out.Background = c
			break
		}
	}
	for _, c := range all {
		if Brightness(c) < darkThreshold {
			out.Text = c
			break
		}
	}

	used := map[string]bool{
		out.Primary:    true,
		out.Secondary:  true,
		out.Accent:     true,
		out.Background: true,
		out.Text:       true,
	}
	additional := make([]string, 0, 3)
	for _, c := range all {
		if used[c] {
			continue
		}
		additional = append(additional, c)
		if len(additional) == 3 {
			break
		}
	}
	out.Additional = additional

	cardBackground := DefaultBackground
	if out.Background == DefaultBackground {
		cardBackground = "#f8f9fa"
	}
	out.UIComponents = UIComponents{
		Button:         out.Primary,
		ButtonHover:    out.Secondary,
		Header:         out.Primary,
		CardBackground: cardBackground,
		Border:         "#e0e0e0",
	}

	return out
}

// Union returns the deduplicated union of both sequences, first
// occurrence order preserved.
func Union(imageColors, descriptionColors []string) []string {
	seen := make(map[string]bool, len(imageColors)+len(descriptionColors))
	union := make([]string, 0, len(imageColors)+len(descriptionColors))
	for _, c := range append(append([]string{}, imageColors...), descriptionColors...) {
		if seen[c] {
			continue
		}
		seen[c] = true
		union = append(union, c)
	}
	return union
}
