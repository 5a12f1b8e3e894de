package emojiwebp

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/emojiwebp/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeImg decodes the raw payload of an embedded image.
func decodeImg(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	ctype := utils.DetectContentType(data)
	if !strings.HasPrefix(ctype, "image/") {
		return nil, fmt.Errorf("the payload is not an image file: %s", ctype)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode the image: %w", err)
	}
	return img, nil
}

// containFit scales the image, preserving its aspect ratio, so that it
// fits entirely into a width x height box, then centers it on a fully
// transparent canvas of exactly that size. Smaller images are enlarged.
func containFit(img image.Image, width, height int, filter imaging.ResampleFilter) *image.NRGBA {
	canvas := imaging.New(width, height, color.NRGBA{})

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return canvas
	}
	ratio := math.Min(
		float64(width)/float64(b.Dx()),
		float64(height)/float64(b.Dy()),
	)
	nw := utils.Clamp(int(math.Round(float64(b.Dx())*ratio)), 1, width)
	nh := utils.Clamp(int(math.Round(float64(b.Dy())*ratio)), 1, height)

	resized := imaging.Resize(img, nw, nh, filter)
	return imaging.PasteCenter(canvas, resized)
}
