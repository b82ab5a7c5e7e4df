// Package core provides the row-to-metadata conversion logic.
// This package has no CLI dependencies and can be used by any frontend.
package core

import (
	"fmt"
	"time"
)

// Slot identifies which part of a metadata document a column feeds.
type Slot int

const (
	SlotAttribute Slot = iota
	SlotTitle
	SlotImage
	SlotVideo
	SlotExternalURL
)

var slotNames = map[Slot]string{
	SlotAttribute:   "attribute",
	SlotTitle:       "title",
	SlotImage:       "image",
	SlotVideo:       "video",
	SlotExternalURL: "external_url",
}

func (s Slot) String() string {
	if name, ok := slotNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// Binding maps one source column to an output slot.
type Binding struct {
	Column string // Column header name (matched case-insensitively)
	Slot   Slot   // Output slot fed by this column
	Trait  string // trait_type label, only for SlotAttribute
}

// SchemaInfo contains display information about a schema variant.
type SchemaInfo struct {
	Key          string // Unique identifier: "final"
	Label        string // Display name
	DefaultInput string // Input file used when no path is configured
}

// Schema describes one input shape: which columns supply which output
// slots, and the priority order of attribute columns.
type Schema struct {
	Info     SchemaInfo
	Bindings []Binding
}

// Columns returns the recognized column names in binding order.
func (s Schema) Columns() []string {
	cols := make([]string, len(s.Bindings))
	for i, b := range s.Bindings {
		cols[i] = b.Column
	}
	return cols
}

// Column returns the column bound to a non-attribute slot.
func (s Schema) Column(slot Slot) (string, bool) {
	for _, b := range s.Bindings {
		if b.Slot == slot {
			return b.Column, true
		}
	}
	return "", false
}

// Attributes returns the attribute bindings in priority order.
func (s Schema) Attributes() []Binding {
	var out []Binding
	for _, b := range s.Bindings {
		if b.Slot == SlotAttribute {
			out = append(out, b)
		}
	}
	return out
}

// HeaderIndex maps column names (lowercase) to their position in the row.
type HeaderIndex map[string]int

// RowRecord is one parsed table row. Fields hold the raw, untrimmed cell
// values keyed by the schema's column names.
type RowRecord struct {
	Index  int // 1-based data row number
	Line   int // Line (CSV) or row (XLSX) in the source file
	Fields map[string]string
}

// Get returns the raw value for a column, or "" if it was not captured.
func (r RowRecord) Get(column string) string {
	return r.Fields[column]
}

// DisplayTypeString is the display_type used for every attribute.
const DisplayTypeString = "string"

// Attribute is one trait descriptor in a metadata document.
type Attribute struct {
	TraitType   string `json:"trait_type"`
	Value       any    `json:"value"`
	DisplayType string `json:"display_type"`
}

// Metadata is the token metadata document written for each row.
type Metadata struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
	Video       *string     `json:"video,omitempty"`
	ExternalURL *string     `json:"external_url,omitempty"`
	Attributes  []Attribute `json:"attributes"`
}

// RunPhase indicates the current stage of a pipeline run.
type RunPhase string

const (
	PhaseStarting  RunPhase = "starting"
	PhaseCounting  RunPhase = "counting"
	PhaseWriting   RunPhase = "writing"
	PhaseComplete  RunPhase = "complete"
	PhaseFailed    RunPhase = "failed"
	PhaseCancelled RunPhase = "cancelled"
)

// RunProgress represents the current state of a pipeline run.
type RunProgress struct {
	Phase      RunPhase
	TotalRows  int
	CurrentRow int
	FileName   string // Last file written, set during PhaseWriting
	Error      string // Non-empty if Phase is PhaseFailed
}

// Percent returns the progress as a percentage (0-100).
func (p RunProgress) Percent() int {
	if p.TotalRows <= 0 {
		return 0
	}
	return (p.CurrentRow * 100) / p.TotalRows
}

// ProgressCallback is called at each milestone of a run.
type ProgressCallback func(RunProgress)

// RunResult contains the final result of a pipeline run.
type RunResult struct {
	InputPath string
	OutputDir string
	Schema    string
	TotalRows int
	Generated int
	Duration  time.Duration
}
