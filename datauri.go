package emojiwebp

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

// dataURIPrefix marks a string as an embedded image value.
const dataURIPrefix = "data:image/"

const base64Marker = ";base64,"

// DataURI is an image inlined as a data URI: a MIME type plus the raw payload bytes.
type DataURI struct {
	MimeType string
	Data     []byte
}

// IsDataURI reports whether s looks like an embedded image value.
// Only the prefix is checked; ParseDataURI does the actual validation.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// ParseDataURI parses a "data:<mime>;base64,<payload>" string.
func ParseDataURI(s string) (DataURI, error) {
	if !IsDataURI(s) {
		return DataURI{}, errors.New("not an embedded image value")
	}
	head, payload, ok := strings.Cut(strings.TrimPrefix(s, "data:"), base64Marker)
	if !ok {
		return DataURI{}, errors.New("embedded image is not base64 encoded")
	}
	// Drop optional media type parameters, e.g. "image/png;charset=utf-8".
	mime, _, _ := strings.Cut(head, ";")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return DataURI{}, fmt.Errorf("could not decode the base64 payload: %w", err)
	}
	return DataURI{MimeType: mime, Data: data}, nil
}

// String encodes the value back to its data URI form.
func (d DataURI) String() string {
	return "data:" + d.MimeType + base64Marker + base64.StdEncoding.EncodeToString(d.Data)
}
