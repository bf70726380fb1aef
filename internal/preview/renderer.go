// Package preview renders mockup images demonstrating an organized
// palette.
package preview

import (
	"context"
	"strings"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

// Template selects the mockup layout.
type Template string

// Supported mockup templates.
const (
	TemplateWebsite   Template = "website"
	TemplateMobile    Template = "mobile"
	TemplateDashboard Template = "dashboard"
)

// ParseTemplate maps a request value onto a known template, defaulting
// to website for unrecognized values.
func ParseTemplate(s string) Template {
	switch Template(strings.ToLower(strings.TrimSpace(s))) {
	case TemplateMobile:
		return TemplateMobile
	case TemplateDashboard:
		return TemplateDashboard
	default:
		return TemplateWebsite
	}
}

// Preview is a rendered mockup payload ready for transport.
type Preview struct {
	ImageData string `json:"image_data"`
	MIMEType  string `json:"mime_type"`
}

// Renderer produces a mockup for the given palette and template.
type Renderer interface {
	Render(ctx context.Context, p palette.Organized, template Template) (Preview, error)
}
