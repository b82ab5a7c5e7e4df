package core

import "strings"

// Transform maps one row to its metadata document using the schema's
// bindings. It never fails: missing optional values are omitted and a
// missing image becomes an empty string.
func Transform(s Schema, row RowRecord) Metadata {
	doc := Metadata{Attributes: []Attribute{}}

	for _, b := range s.Bindings {
		raw := row.Get(b.Column)

		switch b.Slot {
		case SlotTitle:
			doc.Name = raw
			doc.Description = raw
		case SlotImage:
			doc.Image = strings.TrimSpace(raw)
		case SlotVideo:
			doc.Video = optional(raw)
		case SlotExternalURL:
			doc.ExternalURL = optional(raw)
		case SlotAttribute:
			v := strings.TrimSpace(raw)
			if v == "" {
				continue
			}
			doc.Attributes = append(doc.Attributes, Attribute{
				TraitType:   b.Trait,
				Value:       v,
				DisplayType: DisplayTypeString,
			})
		}
	}

	return doc
}
