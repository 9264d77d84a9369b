// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/models"
)

// modelRepository is the SQL implementation of [ModelRepository]. Tables and
// columns come from the model definitions; values are always bound as
// query arguments.
type modelRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewModelRepository constructs a [ModelRepository] backed by db.
func NewModelRepository(db *DB, logger *logger.Logger) ModelRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating model repository")
	return &modelRepository{
		db:     db,
		logger: logger,
	}
}

// Count runs SELECT COUNT(*) against the table of m.
//
// Error handling:
//   - attribute without a column → [ErrUnknownColumn].
//   - retryable driver error → wrapped with [ErrTransient].
//   - any other driver error → wrapped with [ErrExecutingQuery].
func (r *modelRepository) Count(ctx context.Context, m *models.Model, criteria models.Criteria) (int64, error) {
	log := logger.FromContext(ctx)

	where, err := r.db.whereClause(m, criteria)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.Count").Str("model", m.Identity).Msg("error building criteria")
		return 0, err
	}

	query, args, err := r.db.buildCountQuery(m.Table(), where)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.Count").Str("model", m.Identity).Msg("error building query")
		return 0, err
	}

	return r.count(ctx, "*modelRepository.Count", query, args)
}

// CountAssociation counts the alias collection of the first record of m
// matching criteria. One-to-many collections are counted on the table of
// target through its "via" column; many-to-many collections are counted on
// the junction table.
func (r *modelRepository) CountAssociation(ctx context.Context, m *models.Model, criteria models.Criteria, alias string, target *models.Model) (int64, error) {
	log := logger.FromContext(ctx)

	assoc, ok := m.Association(alias)
	if !ok || !assoc.IsCollection() {
		return 0, fmt.Errorf("%w: %s.%s", ErrInvalidAssociation, m.Identity, alias)
	}

	id, err := r.findOne(ctx, m, criteria)
	if err != nil {
		return 0, err
	}

	var query string
	var args []any
	if assoc.IsManyToMany() {
		query, args, err = r.db.buildCountQuery(assoc.Through, sq.Eq{quoteIdent(assoc.JunctionKey(m.Identity)): id})
	} else {
		column, ok := target.Column(assoc.Via)
		if !ok {
			err = fmt.Errorf("%w: %s.%s", ErrUnknownColumn, target.Identity, assoc.Via)
			log.Err(err).Str("func", "*modelRepository.CountAssociation").Msg("association has no back reference")
			return 0, err
		}
		query, args, err = r.db.buildCountQuery(target.Table(), sq.Eq{quoteIdent(column): id})
	}
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.CountAssociation").Msg("error building query")
		return 0, err
	}

	return r.count(ctx, "*modelRepository.CountAssociation", query, args)
}

// findOne returns the primary key of the first record of m matching criteria.
func (r *modelRepository) findOne(ctx context.Context, m *models.Model, criteria models.Criteria) (any, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindOneQuery(m, criteria)
	if err != nil {
		log.Err(err).Str("func", "*modelRepository.findOne").Str("model", m.Identity).Msg("error building query")
		return nil, err
	}

	var id any
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %s", ErrRecordNotFound, m.Identity)
	case err != nil:
		log.Err(err).Str("func", "*modelRepository.findOne").Str("model", m.Identity).Msg("error finding record")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	return id, nil
}

func (r *modelRepository) count(ctx context.Context, fn, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	var n int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", fn).Str("query", query).Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, r.db.classify(err))
	}

	log.Debug().Str("func", fn).Str("query", query).Int64("count", n).Msg("count query executed")
	return n, nil
}
