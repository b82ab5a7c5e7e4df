package core

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders a slot by name.
func (s Slot) MarshalYAML() (interface{}, error) {
	if _, ok := slotNames[s]; !ok {
		return nil, fmt.Errorf("unknown slot %d", int(s))
	}
	return s.String(), nil
}

type yamlBinding struct {
	Column string `yaml:"column"`
	Slot   Slot   `yaml:"slot"`
	Trait  string `yaml:"trait,omitempty"`
}

type yamlSchema struct {
	Key          string        `yaml:"key"`
	Label        string        `yaml:"label,omitempty"`
	DefaultInput string        `yaml:"default_input,omitempty"`
	Bindings     []yamlBinding `yaml:"bindings"`
}

type yamlSchemaFile struct {
	Schemas []yamlSchema `yaml:"schemas"`
}

// MarshalSchemasYAML renders schema descriptors as a YAML document, for
// inspecting which columns each variant reads.
func MarshalSchemasYAML(schemas []Schema) ([]byte, error) {
	doc := yamlSchemaFile{Schemas: make([]yamlSchema, 0, len(schemas))}
	for _, s := range schemas {
		ys := yamlSchema{
			Key:          s.Info.Key,
			Label:        s.Info.Label,
			DefaultInput: s.Info.DefaultInput,
			Bindings:     make([]yamlBinding, len(s.Bindings)),
		}
		for i, b := range s.Bindings {
			ys.Bindings[i] = yamlBinding{Column: b.Column, Slot: b.Slot, Trait: b.Trait}
		}
		doc.Schemas = append(doc.Schemas, ys)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal schemas: %w", err)
	}
	return out, nil
}
