// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/models"
)

// Registry stores models keyed by identity. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*models.Model

	logger *logger.Logger
}

// New returns an empty Registry.
func New(logger *logger.Logger) *Registry {
	return &Registry{
		models: make(map[string]*models.Model),
		logger: logger,
	}
}

// Register validates m and adds it to the registry. When m declares no
// associations they are derived from attributes that reference a model or
// a collection.
func (r *Registry) Register(m *models.Model) error {
	if m == nil || m.Identity == "" || m.Identity != strings.ToLower(m.Identity) || strings.ContainsAny(m.Identity, "/ ") {
		var identity string
		if m != nil {
			identity = m.Identity
		}
		return fmt.Errorf("%w: %q", ErrInvalidIdentity, identity)
	}

	if len(m.Associations) == 0 {
		m.Associations = deriveAssociations(m.Attributes)
	}
	for _, a := range m.Associations {
		if err := validateAssociation(a); err != nil {
			return fmt.Errorf("model %q: %w", m.Identity, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.models[m.Identity]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateModel, m.Identity)
	}
	r.models[m.Identity] = m

	r.logger.Debug().
		Str("model", m.Identity).
		Int("attributes", len(m.Attributes)).
		Int("associations", len(m.Associations)).
		Bool("controller", m.Controller != nil).
		Msg("model registered")

	return nil
}

// Model looks up a model by identity.
func (r *Registry) Model(identity string) (*models.Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[identity]
	return m, ok
}

// Models returns all registered models sorted by identity.
func (r *Registry) Models() []*models.Model {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*models.Model, 0, len(r.models))
	for _, m := range r.models {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identity < out[j].Identity })

	return out
}

// Controller returns the controller of a model. The second value is false
// when the model is unknown or has no controller.
func (r *Registry) Controller(identity string) (*models.Controller, bool) {
	m, ok := r.Model(identity)
	if !ok || m.Controller == nil {
		return nil, false
	}
	return m.Controller, true
}

// Link checks that every association targets a registered model and fills
// in the junction table of many-to-many associations that do not name one.
// Both sides of a many-to-many relation resolve to the same table; a
// collection without "via" is a one-way many-to-many.
func (r *Registry) Link() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.models {
		for i := range m.Associations {
			a := &m.Associations[i]

			target := a.Model
			if a.IsCollection() {
				target = a.Collection
			}
			other, ok := r.models[target]
			if !ok {
				return fmt.Errorf("%w: %s.%s -> %q", ErrUnknownAssociationTarget, m.Identity, a.Alias, target)
			}

			if !a.IsCollection() || a.Through != "" {
				continue
			}
			if a.Via == "" {
				a.Through = m.Identity + "_" + a.Alias
				continue
			}
			back, ok := other.Attributes.Get(a.Via)
			if !ok || !back.IsCollection() {
				continue
			}
			a.Through = junctionTable(m.Identity, a.Alias, other.Identity, a.Via)
		}
	}

	return nil
}

func junctionTable(identity, alias, otherIdentity, otherAlias string) string {
	left := identity + "_" + alias
	right := otherIdentity + "_" + otherAlias
	if right < left {
		return right
	}
	return left
}

func deriveAssociations(attrs models.Attributes) []models.Association {
	var out []models.Association
	for _, attr := range attrs {
		switch {
		case attr.Collection != "":
			out = append(out, models.Association{
				Alias:      attr.Name,
				Type:       models.AssociationCollection,
				Collection: strings.ToLower(attr.Collection),
				Via:        attr.Via,
				Through:    attr.Through,
			})
		case attr.Model != "":
			out = append(out, models.Association{
				Alias: attr.Name,
				Type:  models.AssociationModel,
				Model: strings.ToLower(attr.Model),
			})
		}
	}
	return out
}

func validateAssociation(a models.Association) error {
	switch {
	case a.Alias == "":
		return fmt.Errorf("%w: empty alias", ErrInvalidAssociation)
	case a.Type == models.AssociationCollection && a.Collection == "":
		return fmt.Errorf("%w: %q has no collection", ErrInvalidAssociation, a.Alias)
	case a.Type == models.AssociationModel && a.Model == "":
		return fmt.Errorf("%w: %q has no model", ErrInvalidAssociation, a.Alias)
	case a.Type != models.AssociationCollection && a.Type != models.AssociationModel:
		return fmt.Errorf("%w: %q has type %q", ErrInvalidAssociation, a.Alias, a.Type)
	}
	return nil
}
