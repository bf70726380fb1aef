package preview

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strconv"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

// FallbackRenderer draws a schematic mockup with fixed geometric
// primitives. Rendering is fully deterministic for a given palette and
// template.
type FallbackRenderer struct{}

// NewFallbackRenderer constructs the deterministic renderer.
func NewFallbackRenderer() *FallbackRenderer {
	return &FallbackRenderer{}
}

// Render draws the mockup for the selected template and returns it as
// base64-encoded PNG.
func (FallbackRenderer) Render(_ context.Context, p palette.Organized, template Template) (Preview, error) {
	var img *image.RGBA
	switch template {
	case TemplateMobile:
		img = drawMobile(p)
	default:
		img = drawWebsite(p)
	}
	drawLegend(img, p)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Preview{}, fmt.Errorf("preview: encode png: %w", err)
	}
	return Preview{
		ImageData: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MIMEType:  "image/png",
	}, nil
}

func drawMobile(p palette.Organized) *image.RGBA {
	const w, h = 360, 640
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillRect(img, 0, 0, w, h, hexToRGBA(p.Background))
	// Header bar.
	fillRect(img, 0, 0, w, 60, hexToRGBA(p.Primary))
	// Content cards with simulated text lines.
	cardTops := []int{80, 220, 360}
	for _, top := range cardTops {
		fillRect(img, 20, top, 340, top+120, color.RGBA{255, 255, 255, 255})
		strokeRect(img, 20, top, 340, top+120, hexToRGBA(p.Secondary))
		for i := 0; i < 3; i++ {
			width := 260 - i*40
			y := top + 20 + i*30
			fillRect(img, 35, y, 35+width, y+10, hexToRGBA(p.Text))
		}
	}
	// Bottom navigation bar.
	fillRect(img, 0, h-60, w, h, hexToRGBA(p.Secondary))
	// Floating action button.
	fillCircle(img, 310, 530, 28, hexToRGBA(p.Accent))

	return img
}

func drawWebsite(p palette.Organized) *image.RGBA {
	const w, h = 1200, 800
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	fillRect(img, 0, 0, w, h, hexToRGBA(p.Background))
	// Header title block and nav items.
	fillRect(img, 40, 20, 240, 60, hexToRGBA(p.Primary))
	for i := 0; i < 3; i++ {
		x := 800 + i*120
		fillRect(img, x, 30, x+80, 50, hexToRGBA(p.Primary))
	}
	// Sidebar below the header.
	fillRect(img, 0, 80, 250, h, hexToRGBA(p.Secondary))
	// Two content cards with heading bar and text lines.
	cardLefts := []int{290, 750}
	for _, left := range cardLefts {
		right := left + 420
		fillRect(img, left, 120, right, 520, color.RGBA{255, 255, 255, 255})
		strokeRect(img, left, 120, right, 520, hexToRGBA(p.Secondary))
		fillRect(img, left+20, 140, right-20, 170, hexToRGBA(p.Accent))
		for i := 0; i < 6; i++ {
			width := 300 - (i%3)*60
			y := 190 + i*40
			fillRect(img, left+20, y, left+20+width, y+12, hexToRGBA(p.Text))
		}
	}
	// Button swatches near the bottom of the content area.
	buttons := []string{p.Primary, p.Secondary, p.Accent}
	for i, c := range buttons {
		x := 290 + i*140
		fillRect(img, x, 560, x+120, 600, hexToRGBA(c))
	}

	return img
}

// drawLegend appends the five-swatch palette strip, right-aligned along
// the bottom edge, each swatch outlined in black.
func drawLegend(img *image.RGBA, p palette.Organized) {
	const swatchW, swatchH = 80, 40
	bounds := img.Bounds()
	colors := []string{p.Primary, p.Secondary, p.Accent, p.Background, p.Text}
	y0 := bounds.Max.Y - swatchH
	x0 := bounds.Max.X - swatchW*len(colors)
	for i, c := range colors {
		x := x0 + i*swatchW
		fillRect(img, x, y0, x+swatchW, y0+swatchH, hexToRGBA(c))
		strokeRect(img, x, y0, x+swatchW, y0+swatchH, color.RGBA{0, 0, 0, 255})
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	bounds := img.Bounds()
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func strokeRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	fillRect(img, x0, y0, x1, y0+1, c)
	fillRect(img, x0, y1-1, x1, y1, c)
	fillRect(img, x0, y0, x0+1, y1, c)
	fillRect(img, x1-1, y0, x1, y1, c)
}

func fillCircle(img *image.RGBA, cx, cy, r int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				if image.Pt(x, y).In(img.Bounds()) {
					img.SetRGBA(x, y, c)
				}
			}
		}
	}
}

// hexToRGBA decodes a #rrggbb color, falling back to mid-gray for
// anything invalid.
func hexToRGBA(hex string) color.RGBA {
	if !palette.IsHex(hex) {
		return color.RGBA{128, 128, 128, 255}
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}
