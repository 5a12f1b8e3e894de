package emojiwebp

import (
	"bytes"
	"context"

	"github.com/disintegration/imaging"
	"github.com/gen2brain/webp"
)

// WebPMimeType is the MIME type of the converted images.
const WebPMimeType = "image/webp"

// Default transcoding parameters.
const (
	DefaultSize         = 42
	DefaultQuality      = 75
	DefaultAlphaQuality = 80
	DefaultMethod       = 6 // maximum compression effort
)

// Transcoder resizes and re-encodes the raw bytes of a single image.
type Transcoder interface {
	Transcode(ctx context.Context, src []byte) ([]byte, error)
}

var _ Transcoder = (*WebPTranscoder)(nil)

// WebPTranscoder fits the source image into a fixed size transparent
// canvas and encodes it as a lossy WebP image.
type WebPTranscoder struct {
	Width        int
	Height       int
	Quality      int
	AlphaQuality int
	Method       int
	Lossless     bool
	Filter       imaging.ResampleFilter
}

// NewWebPTranscoder returns a transcoder initialized with the default parameters.
func NewWebPTranscoder() *WebPTranscoder {
	return &WebPTranscoder{
		Width:        DefaultSize,
		Height:       DefaultSize,
		Quality:      DefaultQuality,
		AlphaQuality: DefaultAlphaQuality,
		Method:       DefaultMethod,
		Filter:       imaging.Lanczos,
	}
}

// Transcode implements the Transcoder interface.
//
// Lossy WebP always stores chroma subsampled at 4:2:0. The alpha plane is
// compressed losslessly by the encoder, AlphaQuality only bounds what a
// lossy alpha encoder would be allowed to drop.
func (t *WebPTranscoder) Transcode(ctx context.Context, src []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	img, err := decodeImg(src)
	if err != nil {
		return nil, err
	}
	dst := containFit(img, t.Width, t.Height, t.Filter)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, webp.Options{
		Quality:  t.Quality,
		Lossless: t.Lossless,
		Method:   t.Method,
	}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
