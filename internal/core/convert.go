package core

import "strings"

// utf8BOM is stripped from the first header cell when the source did not.
const utf8BOM = "\ufeff"

// MakeHeaderIndex creates a HeaderIndex from a header row.
// Keys are lowercased for case-insensitive matching. When a header name
// repeats, the first occurrence wins.
func MakeHeaderIndex(header []string) HeaderIndex {
	idx := make(HeaderIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(CleanHeader(h))
		if _, dup := idx[key]; dup {
			continue
		}
		idx[key] = i
	}
	return idx
}

// CleanHeader removes artifacts spreadsheet exports leave on header cells:
// surrounding whitespace and a stray byte-order mark.
func CleanHeader(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	return strings.TrimSpace(s)
}

// optional returns a pointer to the trimmed value, or nil when it is empty.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
