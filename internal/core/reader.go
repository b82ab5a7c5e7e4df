package core

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// ReaderOptions controls how an input table is decoded.
type ReaderOptions struct {
	Delimiter rune   // CSV field separator, ',' when zero
	Sheet     string // XLSX sheet name, active sheet when empty
}

// rowSource yields raw cell slices from one input format.
type rowSource interface {
	// next returns the next record and its source line. io.EOF ends the table.
	next() ([]string, int, error)
	// padShort reports whether rows whose length differs from the header
	// are tolerated, short ones padded with empty cells. Otherwise any
	// mismatch is a ParseError.
	padShort() bool
	Close() error
}

// TableReader exposes the rows of an input table as RowRecords bound to a
// schema. Rows are produced lazily, one per call to Next.
type TableReader struct {
	path   string
	schema Schema
	src    rowSource
	header []string
	idx    HeaderIndex
	row    int
	empty  bool
}

// OpenTable opens path, reads its header row and binds it to the schema.
// Files ending in .xlsx or .xlsm are read as workbooks, everything else as
// delimited text.
func OpenTable(path string, s Schema, opts ReaderOptions) (*TableReader, error) {
	var (
		src rowSource
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		src, err = openXLSX(path, opts.Sheet)
	default:
		src, err = openCSV(path, opts.Delimiter)
	}
	if err != nil {
		return nil, err
	}

	t := &TableReader{path: path, schema: s, src: src}
	if err := t.readHeader(); err != nil {
		src.Close()
		return nil, err
	}
	return t, nil
}

func (t *TableReader) readHeader() error {
	header, line, err := t.src.next()
	if errors.Is(err, io.EOF) {
		// An empty input has no rows to bind, so it is not a header error.
		t.empty = true
		return nil
	}
	if err != nil {
		return t.wrapReadErr(err)
	}

	idx, missing, err := ValidateHeaders(header, t.schema)
	if err != nil {
		return &ParseError{
			Row:    0,
			Line:   line,
			Column: missing[0],
			Err:    fmt.Errorf("missing required column %q: %w", missing[0], err),
		}
	}

	t.header = header
	t.idx = idx
	return nil
}

// Next returns the next row. It returns io.EOF when the table is exhausted
// and a *ParseError when the row cannot be bound to the schema.
func (t *TableReader) Next() (RowRecord, error) {
	if t.empty {
		return RowRecord{}, io.EOF
	}
	cells, line, err := t.src.next()
	if errors.Is(err, io.EOF) {
		return RowRecord{}, io.EOF
	}
	t.row++
	if err != nil {
		return RowRecord{}, t.wrapReadErr(err)
	}

	if !t.src.padShort() && len(cells) != len(t.header) {
		return RowRecord{}, &ParseError{
			Row:    t.row,
			Line:   line,
			Column: t.firstMissing(len(cells)),
			Err:    fmt.Errorf("row has %d columns, expected %d", len(cells), len(t.header)),
		}
	}

	rec := RowRecord{
		Index:  t.row,
		Line:   line,
		Fields: make(map[string]string, len(t.schema.Bindings)),
	}
	for _, col := range t.schema.Columns() {
		pos := t.idx[strings.ToLower(col)]
		if pos >= len(cells) {
			rec.Fields[col] = ""
			continue
		}

		raw := cells[pos]
		if !utf8.ValidString(raw) {
			return RowRecord{}, &ParseError{Row: t.row, Line: line, Column: col, Err: ErrInvalidEncoding}
		}
		rec.Fields[col] = raw
	}

	return rec, nil
}

// firstMissing names the first schema column a short row cannot reach, or
// "" when the row is long or only lacks columns the schema ignores.
func (t *TableReader) firstMissing(n int) string {
	for _, col := range t.schema.Columns() {
		if t.idx[strings.ToLower(col)] >= n {
			return col
		}
	}
	return ""
}

// wrapReadErr classifies a source error as a parse or I/O failure.
func (t *TableReader) wrapReadErr(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{
			Row:  t.row,
			Line: csvErr.StartLine,
			Err:  fmt.Errorf("invalid csv at position %d: %w", csvErr.Column, csvErr.Err),
		}
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return err
	}
	return &IOError{Op: "read", Path: t.path, Err: err}
}

// Progress returns how much of the input has been consumed (0-100), or 0
// when the source cannot tell.
func (t *TableReader) Progress() int {
	if p, ok := t.src.(interface{ progress() int }); ok {
		return p.progress()
	}
	return 0
}

// Close releases the underlying file.
func (t *TableReader) Close() error {
	return t.src.Close()
}

// CountRows counts the data rows of a table. Rows that fail to decode are
// counted rather than reported, so the total can be logged before
// processing starts; header and I/O errors still fail.
func CountRows(path string, s Schema, opts ReaderOptions) (int, error) {
	t, err := OpenTable(path, s, opts)
	if err != nil {
		return 0, err
	}
	defer t.Close()

	n := 0
	for {
		_, err := t.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil && !IsParseError(err) {
			return n, err
		}
		n++
	}
}

// csvSource reads delimited text.
type csvSource struct {
	f  *os.File
	cr *CountingReader
	r  *csv.Reader
}

func openCSV(path string, delim rune) (*csvSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}

	var size int64
	if info, err := f.Stat(); err == nil {
		size = info.Size()
	}

	in, cr := wrapInput(f, size)
	r := csv.NewReader(in)
	if delim != 0 {
		r.Comma = delim
	}
	// Row length is checked against the header in Next so the error can
	// name the missing column.
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	return &csvSource{f: f, cr: cr, r: r}, nil
}

func (c *csvSource) next() ([]string, int, error) {
	record, err := c.r.Read()
	if err != nil {
		return nil, 0, err
	}
	line, _ := c.r.FieldPos(0)
	return record, line, nil
}

func (c *csvSource) padShort() bool { return false }

func (c *csvSource) progress() int { return c.cr.Progress() }

func (c *csvSource) Close() error {
	return c.f.Close()
}
