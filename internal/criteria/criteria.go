// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package criteria turns the query string and route parameters of a
// blueprint request into [models.Criteria].
//
// Criteria come from the "where" parameter, a JSON object, or, when it is
// absent, from every non-reserved query parameter. The "id" route parameter
// always restricts the primary key.
//
//	GET /user/count?where={"age":{">=":18},"role":["admin","member"]}
//	GET /user/count?role=admin
package criteria

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/blueprint-utils/models"
)

// IDParam is the route parameter holding a record identifier.
const IDParam = "id"

// reserved query parameters never become criteria.
var reserved = map[string]struct{}{
	"where":    {},
	"limit":    {},
	"skip":     {},
	"sort":     {},
	"populate": {},
	"select":   {},
	"omit":     {},
	"callback": {},
	"_":        {},
}

var modifiers = map[string]models.Operator{
	"=":                  models.OpEq,
	"equals":             models.OpEq,
	"!=":                 models.OpNotEq,
	"not":                models.OpNotEq,
	"<":                  models.OpLt,
	"lessThan":           models.OpLt,
	"<=":                 models.OpLtOrEq,
	"lessThanOrEqual":    models.OpLtOrEq,
	">":                  models.OpGt,
	"greaterThan":        models.OpGt,
	">=":                 models.OpGtOrEq,
	"greaterThanOrEqual": models.OpGtOrEq,
	"in":                 models.OpIn,
	"nin":                models.OpNotIn,
	"contains":           models.OpContains,
	"startsWith":         models.OpStartsWith,
	"endsWith":           models.OpEndsWith,
	"like":               models.OpLike,
}

// Parse builds the criteria of a request against model m. Conditions are
// ordered by attribute name, then by modifier.
func Parse(r *http.Request, m *models.Model) (models.Criteria, error) {
	where, err := whereFromRequest(r)
	if err != nil {
		return nil, err
	}

	if id := chi.URLParam(r, IDParam); id != "" {
		where[m.PK()] = id
	}

	keys := make([]string, 0, len(where))
	for k := range where {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out models.Criteria
	for _, key := range keys {
		if _, ok := m.Column(key); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, key)
		}

		conds, err := conditions(key, where[key])
		if err != nil {
			return nil, err
		}
		out = append(out, conds...)
	}

	return out, nil
}

func whereFromRequest(r *http.Request) (map[string]any, error) {
	query := r.URL.Query()
	where := make(map[string]any)

	if raw := strings.TrimSpace(query.Get("where")); raw != "" {
		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(&where); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidWhere, err)
		}
		if where == nil {
			where = make(map[string]any)
		}
		return where, nil
	}

	for key, values := range query {
		if _, ok := reserved[key]; ok {
			continue
		}
		if len(values) == 1 {
			where[key] = values[0]
			continue
		}
		list := make([]any, len(values))
		for i, v := range values {
			list[i] = v
		}
		where[key] = list
	}

	return where, nil
}

func conditions(attribute string, value any) (models.Criteria, error) {
	switch v := value.(type) {
	case map[string]any:
		mods := make([]string, 0, len(v))
		for k := range v {
			mods = append(mods, k)
		}
		sort.Strings(mods)

		out := make(models.Criteria, 0, len(v))
		for _, mod := range mods {
			op, ok := modifiers[mod]
			if !ok {
				return nil, fmt.Errorf("%w: %q on %q", ErrUnknownModifier, mod, attribute)
			}
			cond, err := condition(attribute, op, v[mod])
			if err != nil {
				return nil, err
			}
			out = append(out, cond)
		}
		return out, nil
	case []any:
		cond, err := condition(attribute, models.OpIn, v)
		if err != nil {
			return nil, err
		}
		return models.Criteria{cond}, nil
	default:
		cond, err := condition(attribute, models.OpEq, v)
		if err != nil {
			return nil, err
		}
		return models.Criteria{cond}, nil
	}
}

func condition(attribute string, op models.Operator, value any) (models.Condition, error) {
	switch op {
	case models.OpIn, models.OpNotIn:
		list, ok := value.([]any)
		if !ok {
			return models.Condition{}, fmt.Errorf("%w: %q on %q expects a list", ErrInvalidValue, op, attribute)
		}
		for i := range list {
			scalar, err := normalize(list[i])
			if err != nil {
				return models.Condition{}, fmt.Errorf("%w: %q on %q", err, op, attribute)
			}
			list[i] = scalar
		}
		return models.Condition{Attribute: attribute, Operator: op, Value: list}, nil
	case models.OpContains, models.OpStartsWith, models.OpEndsWith, models.OpLike:
		s, ok := value.(string)
		if !ok {
			return models.Condition{}, fmt.Errorf("%w: %q on %q expects a string", ErrInvalidValue, op, attribute)
		}
		return models.Condition{Attribute: attribute, Operator: op, Value: s}, nil
	case models.OpLt, models.OpLtOrEq, models.OpGt, models.OpGtOrEq:
		if value == nil {
			return models.Condition{}, fmt.Errorf("%w: %q on %q cannot compare with null", ErrInvalidValue, op, attribute)
		}
		scalar, err := normalize(value)
		if err != nil {
			return models.Condition{}, fmt.Errorf("%w: %q on %q", err, op, attribute)
		}
		return models.Condition{Attribute: attribute, Operator: op, Value: scalar}, nil
	default:
		scalar, err := normalize(value)
		if err != nil {
			return models.Condition{}, fmt.Errorf("%w: %q on %q", err, op, attribute)
		}
		return models.Condition{Attribute: attribute, Operator: op, Value: scalar}, nil
	}
}

// normalize converts JSON numbers to int64 or float64 and rejects nested
// containers.
func normalize(value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, ErrInvalidValue
		}
		return f, nil
	case map[string]any, []any:
		return nil, ErrInvalidValue
	default:
		return v, nil
	}
}
