package emojiwebp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/esimov/emojiwebp/utils"
)

// EncodeModule writes the dataset as a JavaScript module assigning it
// to the exported constant name.
func EncodeModule(w io.Writer, export string, ds Dataset) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if ds == nil {
		ds = Dataset{}
	}
	if err := enc.Encode(ds); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s%s;\n", modulePrefix(export), bytes.TrimRight(buf.Bytes(), "\n"))
	return err
}

// DecodeModule parses a module produced by EncodeModule.
func DecodeModule(r io.Reader, export string) (Dataset, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	prefix := []byte(modulePrefix(export))
	if !bytes.HasPrefix(src, prefix) {
		return nil, datasetError("decode module", fmt.Errorf("missing %q export", export))
	}
	body := bytes.TrimSpace(bytes.TrimPrefix(src, prefix))
	body = bytes.TrimSuffix(body, []byte(";"))

	return ParseDataset(bytes.NewReader(body))
}

// WriteModule atomically writes the dataset module to path, creating
// the parent directory when needed.
func WriteModule(path, export string, ds Dataset) error {
	var buf bytes.Buffer
	if err := EncodeModule(&buf, export, ds); err != nil {
		return datasetError("encode module", err)
	}
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if err := utils.WriteFileAtomic(dir, name, buf.Bytes()); err != nil {
		return fsError("write "+path, err)
	}
	return nil
}

// ReadModule reads back a dataset module written by WriteModule.
func ReadModule(path, export string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fsError("open "+path, err)
	}
	defer f.Close()

	return DecodeModule(f, export)
}

func modulePrefix(export string) string {
	return "export const " + export + " = "
}
