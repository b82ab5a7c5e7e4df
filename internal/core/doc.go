// Package core converts table rows into token metadata documents.
//
// This package holds all conversion logic independent of the command line.
// It can be used by the CLI, other tools, or tests without modification.
//
// # Architecture
//
// A run is a single sequential pipeline:
//
//   - Table Reader: [OpenTable] binds an input's header row to a [Schema]
//     and yields one [RowRecord] per data row. CSV and XLSX inputs are
//     supported.
//   - Row Transformer: [Transform] maps a row to a [Metadata] document.
//     It is pure and never fails.
//   - Document Writer: [DocumentWriter] stores each document as a file
//     named by its 1-based sequence number, with no extension.
//   - Orchestrator: [Pipeline.Run] counts rows, then transforms and writes
//     them in order, stopping at the first error.
//
// # Schema Registry
//
// Input shapes are described declaratively and registered at init time
// using [Register]. Each binding ties a column to an output slot:
//
//	core.Register(core.Schema{
//	    Info: core.SchemaInfo{Key: "final", DefaultInput: "final.csv"},
//	    Bindings: []core.Binding{
//	        {Column: "TITLE", Slot: core.SlotTitle},
//	        {Column: "image", Slot: core.SlotImage},
//	        {Column: "GRADER", Slot: core.SlotAttribute, Trait: "Grader"},
//	    },
//	})
//
// Attribute bindings are emitted in the order they are declared.
//
// # Error Handling
//
// Failures are reported as [*IOError] (open, read, write) or [*ParseError]
// (header or row does not fit the schema). [MapError] turns either into a
// user message with a support code.
package core
