package vision

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"

	_ "image/gif" // register GIF decoding
	_ "image/png" // register PNG decoding

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoding
)

// maxDimension caps either side of the image sent to the vision model.
const maxDimension = 1024

// prepareImage decodes uploaded image data, flattens transparency onto
// white, downscales so neither dimension exceeds 1024px and re-encodes
// as JPEG for the provider payload.
func prepareImage(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("empty image bounds")
	}

	targetW, targetH := fitWithin(width, height, maxDimension)

	flat := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	xdraw.Draw(flat, flat.Bounds(), image.NewUniform(color.White), image.Point{}, xdraw.Src)
	if targetW == width && targetH == height {
		xdraw.Draw(flat, flat.Bounds(), src, bounds.Min, xdraw.Over)
	} else {
		xdraw.ApproxBiLinear.Scale(flat, flat.Bounds(), src, bounds, xdraw.Over, nil)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flat, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// fitWithin scales (w, h) down proportionally so both fit inside max.
// Images already within bounds are left untouched.
func fitWithin(w, h, max int) (int, int) {
	if w <= max && h <= max {
		return w, h
	}
	if w >= h {
		scaled := h * max / w
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}
	scaled := w * max / h
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}
