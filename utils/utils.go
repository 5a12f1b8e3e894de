package utils

import (
	"net/http"
	"os"

	"golang.org/x/term"
)

// DetectContentType sniffs the MIME type of a byte payload.
// It always returns a valid content-type and "application/octet-stream" if no others seemed to match.
func DetectContentType(data []byte) string {
	// Only the first 512 bytes are used to sniff the content type.
	if len(data) > 512 {
		data = data[:512]
	}
	return http.DetectContentType(data)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
