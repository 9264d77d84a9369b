// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Association types.
const (
	AssociationCollection = "collection"
	AssociationModel      = "model"
)

// Association describes a relation from one model to another.
//
//	{"alias": "clients", "type": "collection", "collection": "client", "via": "user"}
type Association struct {
	// Alias is the attribute name the relation is exposed under.
	Alias string `yaml:"alias" json:"alias"`

	// Type is either "collection" (to-many) or "model" (to-one).
	Type string `yaml:"type" json:"type"`

	// Collection is the identity of the related model for to-many relations.
	Collection string `yaml:"collection,omitempty" json:"collection,omitempty"`

	// Model is the identity of the related model for to-one relations.
	Model string `yaml:"model,omitempty" json:"model,omitempty"`

	// Via is the attribute on the related model pointing back.
	Via string `yaml:"via,omitempty" json:"via,omitempty"`

	// Through is the junction table of a many-to-many relation.
	Through string `yaml:"through,omitempty" json:"through,omitempty"`

	// ThroughKey is the junction column referencing the owning record.
	// Defaults to "<identity>_id" of the owning model.
	ThroughKey string `yaml:"throughKey,omitempty" json:"-"`
}

// IsCollection reports whether the association is to-many.
func (a Association) IsCollection() bool {
	return a.Type == AssociationCollection
}

// IsManyToMany reports whether the association is resolved through a
// junction table.
func (a Association) IsManyToMany() bool {
	return a.IsCollection() && a.Through != ""
}

// JunctionKey returns the junction column referencing a record of owner.
func (a Association) JunctionKey(owner string) string {
	if a.ThroughKey != "" {
		return a.ThroughKey
	}
	return owner + "_id"
}
