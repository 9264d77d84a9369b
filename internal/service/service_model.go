// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/store"
	"github.com/MKhiriev/blueprint-utils/models"
)

type modelService struct {
	repository store.ModelRepository
	lookup     ModelLookup

	logger *logger.Logger
}

func NewModelService(repository store.ModelRepository, lookup ModelLookup, logger *logger.Logger) ModelService {
	return &modelService{
		repository: repository,
		lookup:     lookup,
		logger:     logger,
	}
}

func (s *modelService) Count(ctx context.Context, m *models.Model, criteria models.Criteria) (int64, error) {
	return retryTransient(ctx, "*modelService.Count", func() (int64, error) {
		return s.repository.Count(ctx, m, criteria)
	})
}

func (s *modelService) CountAssociation(ctx context.Context, m *models.Model, criteria models.Criteria, alias string) (int64, error) {
	assoc, ok := m.Association(alias)
	if !ok || !assoc.IsCollection() {
		return 0, fmt.Errorf("%w: %s.%s", ErrUnknownAssociation, m.Identity, alias)
	}

	target, ok := s.lookup.Model(assoc.Collection)
	if !ok {
		return 0, fmt.Errorf("%w: %s.%s targets unknown model %q", ErrUnknownAssociation, m.Identity, alias, assoc.Collection)
	}

	return retryTransient(ctx, "*modelService.CountAssociation", func() (int64, error) {
		return s.repository.CountAssociation(ctx, m, criteria, alias, target)
	})
}

// retryTransient calls fn and, when it fails with store.ErrTransient, calls
// it exactly once more.
func retryTransient[T any](ctx context.Context, fn string, call func() (T, error)) (T, error) {
	result, err := call()
	if err == nil || !errors.Is(err, store.ErrTransient) || ctx.Err() != nil {
		return result, err
	}

	logger.FromContext(ctx).Warn().Err(err).Str("func", fn).Msg("transient database error, retrying once")
	return call()
}
