package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/blueprint-utils/models"
)

// ModelRepository reads aggregate information about model records.
type ModelRepository interface {
	// Count returns the number of records of m matching criteria.
	Count(ctx context.Context, m *models.Model, criteria models.Criteria) (int64, error)
	// CountAssociation finds the first record of m matching criteria and
	// returns the size of its alias collection, whose records belong to
	// target. Returns [ErrRecordNotFound] when no record matches.
	CountAssociation(ctx context.Context, m *models.Model, criteria models.Criteria, alias string, target *models.Model) (int64, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
