// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the blueprint utility routes of a
// running server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnavailable] for 503).
package adapter

import (
	"context"

	"github.com/MKhiriev/blueprint-utils/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Where is a criteria object sent as the JSON "where" query parameter,
// e.g. {"age": {">=": 18}}.
type Where map[string]any

// BlueprintClient calls the blueprint utility routes. model is the route
// segment of the model as the server binds it (e.g. "users" when
// pluralization is on).
type BlueprintClient interface {
	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Count returns the number of records of model matching where.
	Count(ctx context.Context, model string, where Where) (int64, error)

	// AssociationCount returns the size of the collection of record id.
	AssociationCount(ctx context.Context, model, id, collection string, where Where) (int64, error)

	// Associations lists the associations of model.
	Associations(ctx context.Context, model string) ([]models.Association, error)

	// Schema returns the attributes of model.
	Schema(ctx context.Context, model string) (models.Attributes, error)

	// Filters returns the filter descriptors of model.
	Filters(ctx context.Context, model string) ([]models.Filter, error)

	// Titles returns the column titles of model.
	Titles(ctx context.Context, model string) (map[string]string, error)
}
