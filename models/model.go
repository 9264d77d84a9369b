// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const defaultPrimaryKey = "id"

// Model describes a registered data model: its storage location, its
// attributes (the schema), presentation fields, associations to other
// models and the controller that exposes it over HTTP.
//
// Models are loaded from YAML definition files and are read-only once
// registered.
type Model struct {
	// Identity is the unique, lowercase name of the model (e.g. "user").
	// It is used as the route segment and as the registry key.
	Identity string `yaml:"identity" json:"identity"`

	// TableName is the backing table. Defaults to Identity.
	TableName string `yaml:"tableName,omitempty" json:"tableName,omitempty"`

	// PrimaryKey is the attribute used as the record identifier.
	// Defaults to "id".
	PrimaryKey string `yaml:"primaryKey,omitempty" json:"primaryKey,omitempty"`

	// Attributes is the model schema in declaration order.
	Attributes Attributes `yaml:"attributes" json:"attributes"`

	// Fields carries presentation metadata (titles, filterable and column
	// flags) keyed by attribute name, in declaration order.
	Fields Fields `yaml:"fields,omitempty" json:"fields,omitempty"`

	// Associations lists relations to other models. When empty at
	// registration time it is derived from attributes that reference a
	// model or a collection.
	Associations []Association `yaml:"associations,omitempty" json:"associations,omitempty"`

	// Controller exposes the model over HTTP. A model without a controller
	// gets no blueprint routes.
	Controller *Controller `yaml:"controller,omitempty" json:"controller,omitempty"`
}

// Table returns the name of the table backing the model.
func (m *Model) Table() string {
	if m.TableName != "" {
		return m.TableName
	}
	return m.Identity
}

// PK returns the primary key attribute name.
func (m *Model) PK() string {
	if m.PrimaryKey != "" {
		return m.PrimaryKey
	}
	return defaultPrimaryKey
}

// Column resolves an attribute name to its column name. The primary key
// resolves even when it is not declared as an attribute. The second return
// value is false for unknown attributes.
func (m *Model) Column(attribute string) (string, bool) {
	if attr, ok := m.Attributes.Get(attribute); ok {
		return attr.Column(), true
	}
	if attribute == m.PK() {
		return attribute, true
	}
	return "", false
}

// Association looks up an association by alias.
func (m *Model) Association(alias string) (Association, bool) {
	for _, a := range m.Associations {
		if a.Alias == alias {
			return a, true
		}
	}
	return Association{}, false
}

// Controller holds per-controller blueprint settings.
type Controller struct {
	// Pluralize overrides the global pluralization setting for this
	// controller's routes. Absent means true.
	Pluralize *bool `yaml:"pluralize,omitempty" json:"pluralize,omitempty"`
}

// ShouldPluralize reports whether routes of this controller may be
// pluralized. The global blueprint setting must also be enabled.
func (c *Controller) ShouldPluralize() bool {
	if c == nil || c.Pluralize == nil {
		return true
	}
	return *c.Pluralize
}
