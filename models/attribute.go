// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Attribute is a single schema entry of a [Model].
//
// Known keys are decoded into typed fields; any other key (custom
// validation rules such as "isEmail") is kept verbatim in Rules and emitted
// next to the typed keys when the attribute is serialized.
type Attribute struct {
	// Name is the attribute key. It is taken from the enclosing mapping and
	// is not part of the serialized attribute.
	Name string `yaml:"-" json:"-"`

	Type       string   `yaml:"type,omitempty" json:"type,omitempty"`
	ColumnName string   `yaml:"columnName,omitempty" json:"columnName,omitempty"`
	PrimaryKey bool     `yaml:"primaryKey,omitempty" json:"primaryKey,omitempty"`
	Required   bool     `yaml:"required,omitempty" json:"required,omitempty"`
	Unique     bool     `yaml:"unique,omitempty" json:"unique,omitempty"`
	MinLength  int      `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength  int      `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Enum       []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	DefaultsTo any      `yaml:"defaultsTo,omitempty" json:"defaultsTo,omitempty"`

	// Protected attributes are part of the schema but never offered as
	// filters.
	Protected bool `yaml:"protected,omitempty" json:"protected,omitempty"`

	// Model marks a to-one reference to another model's identity.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`
	// Collection marks a to-many reference to another model's identity.
	Collection string `yaml:"collection,omitempty" json:"collection,omitempty"`
	// Via names the attribute on the referenced model that points back.
	Via string `yaml:"via,omitempty" json:"via,omitempty"`
	// Through names the junction table of a many-to-many collection.
	Through string `yaml:"through,omitempty" json:"through,omitempty"`

	// Rules holds every key that has no typed field above.
	Rules map[string]any `yaml:",inline" json:"-"`
}

// Column returns the column name backing the attribute.
func (a Attribute) Column() string {
	if a.ColumnName != "" {
		return a.ColumnName
	}
	return a.Name
}

// IsCollection reports whether the attribute is a to-many reference.
func (a Attribute) IsCollection() bool {
	return a.Collection != ""
}

// MarshalJSON merges Rules into the typed keys. Typed keys win on conflict.
func (a Attribute) MarshalJSON() ([]byte, error) {
	type plain Attribute

	known, err := json.Marshal(plain(a))
	if err != nil {
		return nil, err
	}
	if len(a.Rules) == 0 {
		return known, nil
	}

	merged := make(map[string]any, len(a.Rules)+4)
	for k, v := range a.Rules {
		merged[k] = v
	}
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}

	return json.Marshal(merged)
}

// UnmarshalJSON is the inverse of MarshalJSON: keys without a typed field
// are collected into Rules.
func (a *Attribute) UnmarshalJSON(data []byte) error {
	type plain Attribute

	var typed plain
	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	var all map[string]any
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for _, key := range typedAttributeKeys {
		delete(all, key)
	}
	if len(all) > 0 {
		typed.Rules = all
	}

	name := a.Name
	*a = Attribute(typed)
	a.Name = name
	return nil
}

var typedAttributeKeys = []string{
	"type", "columnName", "primaryKey", "required", "unique", "minLength", "maxLength",
	"enum", "defaultsTo", "protected", "model", "collection", "via", "through",
}

// Attributes is the ordered attribute set of a model.
type Attributes []Attribute

// Get returns the attribute with the given name.
func (as Attributes) Get(name string) (Attribute, bool) {
	for _, a := range as {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// Names returns attribute names in declaration order.
func (as Attributes) Names() []string {
	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, a.Name)
	}
	return names
}

// UnmarshalYAML decodes a mapping of attribute name to attribute definition,
// keeping the declaration order. A scalar definition is shorthand for the
// attribute type:
//
//	attributes:
//	  name: string
//	  email:
//	    type: email
//	    required: true
func (as *Attributes) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: attributes must be a mapping", value.Line)
	}

	out := make(Attributes, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, node := value.Content[i], value.Content[i+1]

		var attr Attribute
		switch node.Kind {
		case yaml.ScalarNode:
			attr.Type = node.Value
		default:
			if err := node.Decode(&attr); err != nil {
				return fmt.Errorf("attribute %q: %w", key.Value, err)
			}
		}
		attr.Name = key.Value

		out = append(out, attr)
	}

	*as = out
	return nil
}

// MarshalJSON emits the attributes as a JSON object in declaration order.
func (as Attributes) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(as), func(i int) (string, any) {
		return as[i].Name, as[i]
	})
}

// UnmarshalJSON decodes a JSON object of attributes, keeping key order.
func (as *Attributes) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*as = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("attributes must be a JSON object")
	}

	out := make(Attributes, 0)
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var attr Attribute
		if err = dec.Decode(&attr); err != nil {
			return fmt.Errorf("attribute %q: %w", name, err)
		}
		attr.Name = name

		out = append(out, attr)
	}

	*as = out
	return nil
}

// marshalOrdered writes a JSON object whose keys follow the given order.
func marshalOrdered(n int, entry func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, value := entry(i)

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}
