package core

// validation.go checks schema descriptors and header rows.
//
// Validation happens at two levels:
//  1. Schema validation: a descriptor must bind exactly one title and image
//     column, at most one video and external_url column, and label every
//     attribute. Run once at registration.
//  2. Header validation: every column the schema binds must be present in
//     the input's header row. Run once per file, before any row is read.

import (
	"fmt"
	"strings"
)

// ValidationError represents a single validation problem.
type ValidationError struct {
	Field   string // Column or binding name
	Message string // Human-readable error message
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ValidationErrors collects every problem found in one pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// ValidateSchema checks that a schema descriptor is well formed.
func ValidateSchema(s Schema) error {
	var errs ValidationErrors

	if strings.TrimSpace(s.Info.Key) == "" {
		errs = append(errs, ValidationError{Message: "schema key is empty"})
	}

	slots := make(map[Slot]int)
	seen := make(map[string]bool)
	for i, b := range s.Bindings {
		col := strings.TrimSpace(b.Column)
		if col == "" {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("binding %d", i),
				Message: "column name is empty",
			})
			continue
		}

		key := strings.ToLower(col)
		if seen[key] {
			errs = append(errs, ValidationError{Field: b.Column, Message: "column bound more than once"})
		}
		seen[key] = true

		if _, ok := slotNames[b.Slot]; !ok {
			errs = append(errs, ValidationError{Field: b.Column, Message: fmt.Sprintf("unknown slot %d", int(b.Slot))})
			continue
		}
		slots[b.Slot]++

		if b.Slot == SlotAttribute && strings.TrimSpace(b.Trait) == "" {
			errs = append(errs, ValidationError{Field: b.Column, Message: "attribute binding has no trait label"})
		}
		if b.Slot != SlotAttribute && b.Trait != "" {
			errs = append(errs, ValidationError{Field: b.Column, Message: fmt.Sprintf("trait label set on %s binding", b.Slot)})
		}
	}

	for _, slot := range []Slot{SlotTitle, SlotImage} {
		if slots[slot] != 1 {
			errs = append(errs, ValidationError{
				Field:   slot.String(),
				Message: fmt.Sprintf("exactly one binding required, found %d", slots[slot]),
			})
		}
	}
	for _, slot := range []Slot{SlotVideo, SlotExternalURL} {
		if slots[slot] > 1 {
			errs = append(errs, ValidationError{
				Field:   slot.String(),
				Message: fmt.Sprintf("at most one binding allowed, found %d", slots[slot]),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateHeaders validates that every column bound by the schema exists in
// the header row. Returns the header index, or an error naming the first
// missing column together with the full missing list.
func ValidateHeaders(headers []string, s Schema) (HeaderIndex, []string, error) {
	idx := MakeHeaderIndex(headers)
	var missing []string

	for _, col := range s.Columns() {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			missing = append(missing, col)
		}
	}

	if len(missing) > 0 {
		return nil, missing, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return idx, nil, nil
}
