// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Operator is a comparison applied by a [Condition].
type Operator string

// Supported criteria operators.
const (
	OpEq         Operator = "="
	OpNotEq      Operator = "!="
	OpLt         Operator = "<"
	OpLtOrEq     Operator = "<="
	OpGt         Operator = ">"
	OpGtOrEq     Operator = ">="
	OpIn         Operator = "in"
	OpNotIn      Operator = "nin"
	OpContains   Operator = "contains"
	OpStartsWith Operator = "startsWith"
	OpEndsWith   Operator = "endsWith"
	OpLike       Operator = "like"
)

// Condition restricts one attribute of a model.
type Condition struct {
	// Attribute is the model attribute name (not the column name).
	Attribute string
	Operator  Operator
	// Value is a scalar, or a []any for OpIn and OpNotIn.
	Value any
}

// Criteria is a conjunction of conditions.
type Criteria []Condition
