package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/blueprint-utils/models"
)

// ModelService answers the aggregate reads behind blueprint routes.
type ModelService interface {
	// Count returns the number of records of m matching criteria.
	Count(ctx context.Context, m *models.Model, criteria models.Criteria) (int64, error)

	// CountAssociation returns the size of the alias collection of the one
	// record of m matched by criteria.
	//
	// Returns [ErrUnknownAssociation] when alias is not a collection of m and
	// store.ErrRecordNotFound when criteria match no record.
	CountAssociation(ctx context.Context, m *models.Model, criteria models.Criteria, alias string) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// ModelLookup resolves model definitions by identity.
type ModelLookup interface {
	Model(identity string) (*models.Model, bool)
}
