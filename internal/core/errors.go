package core

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInvalidEncoding indicates a cell is not valid UTF-8.
var ErrInvalidEncoding = errors.New("encoding error: invalid UTF-8")

// IOError reports a file that could not be opened, read or written.
type IOError struct {
	Op   string // "open", "read", "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, cause)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a row that does not fit the schema.
// Row 0 is the header row; data rows are numbered from 1.
type ParseError struct {
	Row    int
	Line   int    // Source line, 0 when unknown
	Column string // Offending column, empty when the whole row is malformed
	Err    error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("row %d", e.Row)
	if e.Row == 0 {
		where = "header"
	}
	if e.Line > 0 {
		where += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Column != "" {
		where += fmt.Sprintf(", column %q", e.Column)
	}
	return fmt.Sprintf("parse error at %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err wraps a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsIOError reports whether err wraps an *IOError.
func IsIOError(err error) bool {
	var ioe *IOError
	return errors.As(err, &ioe)
}
