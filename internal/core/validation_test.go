package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSchema_Valid(t *testing.T) {
	assert.NoError(t, ValidateSchema(testSchema()))
}

func TestValidateSchema_Problems(t *testing.T) {
	base := func(extra ...Binding) Schema {
		return Schema{
			Info: SchemaInfo{Key: "k"},
			Bindings: append([]Binding{
				{Column: "TITLE", Slot: SlotTitle},
				{Column: "image", Slot: SlotImage},
			}, extra...),
		}
	}

	tests := []struct {
		name    string
		schema  Schema
		wantMsg string
	}{
		{
			name:    "empty key",
			schema:  Schema{Bindings: base().Bindings},
			wantMsg: "schema key is empty",
		},
		{
			name:    "no title",
			schema:  Schema{Info: SchemaInfo{Key: "k"}, Bindings: []Binding{{Column: "image", Slot: SlotImage}}},
			wantMsg: "title: exactly one binding required, found 0",
		},
		{
			name:    "two images",
			schema:  base(Binding{Column: "IMAGE URL", Slot: SlotImage}),
			wantMsg: "image: exactly one binding required, found 2",
		},
		{
			name:    "two videos",
			schema:  base(Binding{Column: "a", Slot: SlotVideo}, Binding{Column: "b", Slot: SlotVideo}),
			wantMsg: "video: at most one binding allowed, found 2",
		},
		{
			name:    "duplicate column ignoring case",
			schema:  base(Binding{Column: "Title", Slot: SlotAttribute, Trait: "T"}),
			wantMsg: "Title: column bound more than once",
		},
		{
			name:    "attribute without trait",
			schema:  base(Binding{Column: "GRADE", Slot: SlotAttribute}),
			wantMsg: "GRADE: attribute binding has no trait label",
		},
		{
			name:    "trait on media slot",
			schema:  base(Binding{Column: "video", Slot: SlotVideo, Trait: "Video"}),
			wantMsg: "video: trait label set on video binding",
		},
		{
			name:    "empty column",
			schema:  base(Binding{Column: " ", Slot: SlotAttribute, Trait: "X"}),
			wantMsg: "binding 2: column name is empty",
		},
		{
			name:    "unknown slot",
			schema:  base(Binding{Column: "x", Slot: Slot(42)}),
			wantMsg: "x: unknown slot 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSchema(tt.schema)
			require.Error(t, err)

			var errs ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidateHeaders(t *testing.T) {
	header := []string{"\ufeffSERIAL NUMBER", " grader ", "Title", "YEAR", "LANGUAGE", "SET", "GRADE", "VIDEO", "image", "external_url"}

	idx, missing, err := ValidateHeaders(header, testSchema())
	require.NoError(t, err)
	assert.Nil(t, missing)
	assert.Equal(t, 0, idx["serial number"])
	assert.Equal(t, 1, idx["grader"])
	assert.Equal(t, 7, idx["video"])
}

func TestValidateHeaders_Missing(t *testing.T) {
	_, missing, err := ValidateHeaders([]string{"TITLE", "GRADER"}, testSchema())
	require.Error(t, err)
	assert.Equal(t, []string{"image", "video", "external_url", "SERIAL NUMBER", "GRADE", "YEAR", "LANGUAGE", "SET"}, missing)
	assert.Contains(t, err.Error(), "missing required columns: image, video")
}

func TestMakeHeaderIndex_FirstDuplicateWins(t *testing.T) {
	idx := MakeHeaderIndex([]string{"TITLE", "image", "Title"})
	assert.Equal(t, 0, idx["title"])
	assert.Len(t, idx, 2)
}
