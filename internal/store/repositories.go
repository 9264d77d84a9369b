package store

import "github.com/MKhiriev/blueprint-utils/internal/logger"

// Repositories aggregates every repository backed by one database.
type Repositories struct {
	ModelRepository ModelRepository
}

// NewRepositories builds all repositories on top of db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		ModelRepository: NewModelRepository(db, logger),
	}
}
