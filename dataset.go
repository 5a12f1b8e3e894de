package emojiwebp

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
)

// emojiField is the only record field the converter interprets.
const emojiField = "emoji"

//go:embed data/emojis.json
var emojiData []byte

// Record is a single dataset entry. Values are kept as compacted raw JSON,
// so fields other than "emoji" are carried through untouched.
type Record map[string]json.RawMessage

// Dataset is the ordered emoji collection processed by a run.
type Dataset []Record

// Emoji returns the emoji field as a string. The second value is false
// when the field is missing or is not a JSON string.
func (r Record) Emoji() (string, bool) {
	raw, ok := r[emojiField]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// withEmoji returns a copy of the record with the emoji field replaced.
func (r Record) withEmoji(s string) (Record, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	rec := r.clone()
	rec[emojiField] = raw
	return rec, nil
}

func (r Record) clone() Record {
	if r == nil {
		return nil
	}
	rec := make(Record, len(r))
	for k, v := range r {
		rec[k] = append(json.RawMessage(nil), v...)
	}
	return rec
}

// Clone returns a deep copy of the dataset. Mutating the copy never affects the source.
func (ds Dataset) Clone() Dataset {
	if ds == nil {
		return nil
	}
	out := make(Dataset, len(ds))
	for i, r := range ds {
		out[i] = r.clone()
	}
	return out
}

// ParseDataset decodes a JSON array of objects.
func ParseDataset(r io.Reader) (Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, datasetError("parse", err)
	}
	if err := ds.compact(); err != nil {
		return nil, datasetError("parse", err)
	}
	return ds, nil
}

// DefaultDataset returns the emoji collection bundled into the binary.
func DefaultDataset() (Dataset, error) {
	return ParseDataset(bytes.NewReader(emojiData))
}

// compact normalizes every raw value, so that datasets decoded from
// differently indented sources compare equal field by field.
func (ds Dataset) compact() error {
	for i, r := range ds {
		if r == nil {
			return fmt.Errorf("record %d is not an object", i)
		}
		for k, v := range r {
			var buf bytes.Buffer
			if err := json.Compact(&buf, v); err != nil {
				return fmt.Errorf("record %d, field %q: %w", i, k, err)
			}
			r[k] = buf.Bytes()
		}
	}
	return nil
}
