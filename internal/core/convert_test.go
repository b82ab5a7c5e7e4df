package core

import "testing"

func TestCleanHeader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "simple header unchanged",
			input: "TITLE",
			want:  "TITLE",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "surrounded by whitespace",
			input: "  SERIAL NUMBER  ",
			want:  "SERIAL NUMBER",
		},
		{
			name:  "inner spaces kept",
			input: "URL TO PRODUCT",
			want:  "URL TO PRODUCT",
		},
		{
			name:  "leading BOM",
			input: "\ufeffTITLE",
			want:  "TITLE",
		},
		{
			name:  "BOM then whitespace",
			input: "\ufeff image ",
			want:  "image",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanHeader(tt.input); got != tt.want {
				t.Errorf("CleanHeader(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMakeHeaderIndex(t *testing.T) {
	tests := []struct {
		name   string
		header []string
		checks map[string]int // key -> expected index
	}{
		{
			name:   "simple headers",
			header: []string{"TITLE", "image", "video"},
			checks: map[string]int{
				"title": 0,
				"image": 1,
				"video": 2,
			},
		},
		{
			name:   "case insensitive lookup",
			header: []string{"Title", "IMAGE URL", "mP4 url"},
			checks: map[string]int{
				"title":     0,
				"image url": 1,
				"mp4 url":   2,
			},
		},
		{
			name:   "headers with whitespace",
			header: []string{"  GRADER  ", " YEAR ", "SET"},
			checks: map[string]int{
				"grader": 0,
				"year":   1,
				"set":    2,
			},
		},
		{
			name:   "empty header",
			header: []string{},
			checks: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := MakeHeaderIndex(tt.header)

			for key, wantPos := range tt.checks {
				gotPos, ok := idx[key]
				if !ok {
					t.Errorf("MakeHeaderIndex(%v)[%q] not found, want index %d",
						tt.header, key, wantPos)
					continue
				}
				if gotPos != wantPos {
					t.Errorf("MakeHeaderIndex(%v)[%q] = %d, want %d",
						tt.header, key, gotPos, wantPos)
				}
			}
		})
	}
}

// TestMakeHeaderIndex_DuplicateHeaders verifies behavior with duplicate column names
func TestMakeHeaderIndex_DuplicateHeaders(t *testing.T) {
	// When duplicates exist, the first occurrence wins
	header := []string{"TITLE", "image", "title"}
	idx := MakeHeaderIndex(header)

	if gotPos, ok := idx["title"]; !ok || gotPos != 0 {
		t.Errorf("MakeHeaderIndex with duplicates: title index = %d, want 0", gotPos)
	}
}

func TestOptional(t *testing.T) {
	tests := []struct {
		input string
		want  string
		isNil bool
	}{
		{input: "", isNil: true},
		{input: "   ", isNil: true},
		{input: "\t\n", isNil: true},
		{input: "http://v/1.mp4", want: "http://v/1.mp4"},
		{input: "  http://v/1.mp4 ", want: "http://v/1.mp4"},
	}

	for _, tt := range tests {
		got := optional(tt.input)
		if tt.isNil {
			if got != nil {
				t.Errorf("optional(%q) = %q, want nil", tt.input, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("optional(%q) = %v, want %q", tt.input, got, tt.want)
		}
	}
}
