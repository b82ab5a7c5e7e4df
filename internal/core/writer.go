package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DefaultFileMode is the permission used for generated documents.
const DefaultFileMode os.FileMode = 0o644

// MarshalMetadata renders a document as two-space indented JSON with keys
// in declaration order. HTML characters are left unescaped and no trailing
// newline is added.
func MarshalMetadata(doc Metadata) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// DocumentWriter stores documents as files named by their sequential
// identifier, with no extension.
type DocumentWriter struct {
	Dir  string
	Mode os.FileMode
}

// NewDocumentWriter creates a writer rooted at dir. A zero mode falls back
// to DefaultFileMode.
func NewDocumentWriter(dir string, mode os.FileMode) *DocumentWriter {
	if dir == "" {
		dir = "."
	}
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &DocumentWriter{Dir: dir, Mode: mode}
}

// Path returns the file path used for identifier id.
func (w *DocumentWriter) Path(id int) string {
	return filepath.Join(w.Dir, strconv.Itoa(id))
}

// Prepare ensures the output directory exists.
func (w *DocumentWriter) Prepare() error {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return &IOError{Op: "mkdir", Path: w.Dir, Err: err}
	}
	return nil
}

// Write serializes doc and writes it under id, overwriting any existing
// file. Returns the written file's name.
func (w *DocumentWriter) Write(id int, doc Metadata) (string, error) {
	data, err := MarshalMetadata(doc)
	if err != nil {
		return "", err
	}

	path := w.Path(id)
	if err := os.WriteFile(path, data, w.Mode); err != nil {
		return "", &IOError{Op: "write", Path: path, Err: err}
	}
	return strconv.Itoa(id), nil
}
