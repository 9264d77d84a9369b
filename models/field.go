// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is presentation metadata attached to an attribute of the same name.
type Field struct {
	// Name is the attribute this field describes.
	Name string `yaml:"-" json:"-"`

	// Title is the human readable label.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// Filter marks the attribute as filterable in list views.
	Filter bool `yaml:"filter,omitempty" json:"filter,omitempty"`

	// Column marks the attribute as a visible list column.
	Column bool `yaml:"column,omitempty" json:"column,omitempty"`

	// Detailed is false for shorthand scalar definitions. Only detailed
	// fields take part in filters and titles.
	Detailed bool `yaml:"-" json:"-"`
}

// Fields is the ordered field set of a model.
type Fields []Field

// Get returns the field with the given name.
func (fs Fields) Get(name string) (Field, bool) {
	for _, f := range fs {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// UnmarshalYAML decodes a mapping of attribute name to field definition,
// keeping the declaration order. A scalar value is kept as a title-only
// field.
func (fs *Fields) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: fields must be a mapping", value.Line)
	}

	out := make(Fields, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		var field Field
		switch node.Kind {
		case yaml.ScalarNode:
			field.Title = node.Value
		case yaml.MappingNode:
			if err := node.Decode(&field); err != nil {
				return fmt.Errorf("field %q: %w", key.Value, err)
			}
			field.Detailed = true
		default:
			return fmt.Errorf("field %q: unsupported definition at line %d", key.Value, node.Line)
		}
		field.Name = key.Value

		out = append(out, field)
	}

	*fs = out
	return nil
}

// MarshalJSON emits the fields as a JSON object in declaration order.
func (fs Fields) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(fs), func(i int) (string, any) {
		return fs[i].Name, fs[i]
	})
}
