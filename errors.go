package emojiwebp

import (
	"errors"
	"fmt"
)

// Kind classifies the failures a conversion run can produce.
type Kind int

// The error kinds used accross the conversion pipeline.
const (
	KindFilesystem Kind = iota + 1
	KindTranscode
	KindDataset
)

func (k Kind) String() string {
	switch k {
	case KindFilesystem:
		return "filesystem"
	case KindTranscode:
		return "transcode"
	case KindDataset:
		return "dataset"
	default:
		return "unknown"
	}
}

// Error is the error type returned by the conversion pipeline.
// Index is the position of the offending record, or -1 when the error
// is not tied to a single record.
type Error struct {
	Kind  Kind
	Op    string
	Index int
	Err   error
}

func (e *Error) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s error: %s (record %d): %v", e.Kind, e.Op, e.Index, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err, or any error it wraps, is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func fsError(op string, err error) error {
	return &Error{Kind: KindFilesystem, Op: op, Index: -1, Err: err}
}

func datasetError(op string, err error) error {
	return &Error{Kind: KindDataset, Op: op, Index: -1, Err: err}
}

func transcodeError(idx int, err error) error {
	return &Error{Kind: KindTranscode, Op: "transcode", Index: idx, Err: err}
}
