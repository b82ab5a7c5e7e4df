package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// testSchema mirrors the graded-item export: lowercase media columns and a
// Set attribute.
func testSchema() Schema {
	return Schema{
		Info: SchemaInfo{Key: "test", Label: "Test", DefaultInput: "final.csv"},
		Bindings: []Binding{
			{Column: "TITLE", Slot: SlotTitle},
			{Column: "image", Slot: SlotImage},
			{Column: "video", Slot: SlotVideo},
			{Column: "external_url", Slot: SlotExternalURL},
			{Column: "GRADER", Slot: SlotAttribute, Trait: "Grader"},
			{Column: "SERIAL NUMBER", Slot: SlotAttribute, Trait: "Serial Number"},
			{Column: "GRADE", Slot: SlotAttribute, Trait: "Grade"},
			{Column: "YEAR", Slot: SlotAttribute, Trait: "Year"},
			{Column: "LANGUAGE", Slot: SlotAttribute, Trait: "Language"},
			{Column: "SET", Slot: SlotAttribute, Trait: "Set"},
		},
	}
}

const testHeader = "SERIAL NUMBER,GRADER,TITLE,YEAR,LANGUAGE,SET,GRADE,video,image,external_url"

// writeInput writes content to name inside a fresh temp dir.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// csvLines joins lines with newlines and a trailing newline.
func csvLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func ptr(s string) *string {
	return &s
}
