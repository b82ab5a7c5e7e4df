package core

// streaming.go provides the reader wrappers applied to CSV input before
// it reaches encoding/csv:
//
//   - BOMSkippingReader: Removes the UTF-8 BOM (0xEF 0xBB 0xBF) spreadsheet
//     tools prepend, so the first header name matches its binding
//   - CountingReader: Tracks bytes read for debug progress output

import (
	"bufio"
	"bytes"
	"io"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// BOMSkippingReader wraps an io.Reader and skips the UTF-8 BOM if present.
type BOMSkippingReader struct {
	r       *bufio.Reader
	checked bool
}

// NewBOMSkippingReader creates a new BOM-skipping reader.
func NewBOMSkippingReader(r io.Reader) *BOMSkippingReader {
	return &BOMSkippingReader{r: bufio.NewReader(r)}
}

// Read implements io.Reader. On the first read, it checks for and skips the BOM.
func (b *BOMSkippingReader) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		head, err := b.r.Peek(len(bom))
		if err != nil && err != io.EOF {
			return 0, err
		}
		if bytes.Equal(head, bom) {
			if _, err := b.r.Discard(len(bom)); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
	Total     int64 // If known (0 if unknown)
}

// NewCountingReader creates a counting reader with optional total size.
func NewCountingReader(r io.Reader, total int64) *CountingReader {
	return &CountingReader{reader: r, Total: total}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// Progress returns the read progress as a percentage (0-100).
// Returns 0 if total is unknown.
func (r *CountingReader) Progress() int {
	if r.Total <= 0 {
		return 0
	}
	return int(r.BytesRead * 100 / r.Total)
}

// wrapInput counts raw bytes from r and strips a leading BOM. Read from
// the returned reader; the counter reports progress against totalSize.
func wrapInput(r io.Reader, totalSize int64) (io.Reader, *CountingReader) {
	cr := NewCountingReader(r, totalSize)
	return NewBOMSkippingReader(cr), cr
}
