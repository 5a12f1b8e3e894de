package emojiwebp

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG returns the encoded bytes of a width x height semi transparent PNG.
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 20), G: uint8(y * 20), B: 0x80, A: 0xc0})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("could not encode the test image: %v", err)
	}
	return buf.Bytes()
}

// pngURI returns a data URI wrapping a test PNG.
func pngURI(t *testing.T, width, height int) string {
	t.Helper()
	return DataURI{MimeType: "image/png", Data: testPNG(t, width, height)}.String()
}

// newRecord builds a record from plain Go values.
func newRecord(t *testing.T, fields map[string]any) Record {
	t.Helper()

	rec := make(Record, len(fields))
	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("could not marshal field %q: %v", k, err)
		}
		rec[k] = raw
	}
	return rec
}
