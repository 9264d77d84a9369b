// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CountResponse is returned by the count and association count routes.
//
//	GET /users/count -> {"count": 42000}
type CountResponse struct {
	Count int64 `json:"count"`
}

// AssociationsResponse is returned by the associations route.
type AssociationsResponse struct {
	Associations []Association `json:"associations"`
}

// SchemaResponse is returned by the schema route. Schema carries the model
// attributes verbatim.
type SchemaResponse struct {
	Schema Attributes `json:"schema"`
}

// Filter describes one filterable attribute.
type Filter struct {
	Name      string   `json:"name"`
	Text      string   `json:"text"`
	Type      string   `json:"type,omitempty"`
	MinLength int      `json:"minLength,omitempty"`
	MaxLength int      `json:"maxLength,omitempty"`
	Enum      []string `json:"enum,omitempty"`
}

// FiltersResponse is returned by the filters route.
type FiltersResponse struct {
	Filters []Filter `json:"filters"`
}

// TitlesResponse is returned by the titles route. It maps attribute names
// to their column titles.
type TitlesResponse struct {
	Titles map[string]string `json:"titles"`
}

// ErrorResponse is the body of every non-2xx blueprint response.
type ErrorResponse struct {
	Error string `json:"error"`
}
