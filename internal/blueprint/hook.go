// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package blueprint

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/jinzhu/inflection"

	"github.com/MKhiriev/blueprint-utils/internal/criteria"
	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/metrics"
	"github.com/MKhiriev/blueprint-utils/internal/policy"
	"github.com/MKhiriev/blueprint-utils/internal/service"
	"github.com/MKhiriev/blueprint-utils/models"
)

// Blueprint actions, used as route suffixes and metric labels.
const (
	ActionCount            = "count"
	ActionAssociations     = "associations"
	ActionSchema           = "schema"
	ActionFilters          = "filters"
	ActionTitles           = "titles"
	ActionAssociationCount = "associationCount"
)

// Route describes one bound blueprint route.
type Route struct {
	Method string
	Path   string
	Model  string
	Action string
	Alias  string
}

// Hook binds blueprint routes for the models of a registry.
type Hook struct {
	cfg      Config
	registry ModelRegistry
	service  service.ModelService
	policies *policy.Registry
	metrics  *metrics.Metrics

	initOnce sync.Once
	initErr  error
	policy   func(http.Handler) http.Handler

	bindOnce sync.Once
	mu       sync.RWMutex
	routes   []Route

	logger *logger.Logger
}

// NewHook constructs a Hook. policies and metrics may be nil.
func NewHook(cfg Config, registry ModelRegistry, svc service.ModelService, policies *policy.Registry, metrics *metrics.Metrics, logger *logger.Logger) *Hook {
	if policies == nil {
		policies = policy.NewRegistry()
	}
	cfg.Prefix = strings.TrimRight(cfg.Prefix, "/")

	return &Hook{
		cfg:      cfg,
		registry: registry,
		service:  svc,
		policies: policies,
		metrics:  metrics,
		logger:   logger,
	}
}

// Initialize resolves the configured policy and subscribes the hook to
// router:before. Calls after the first return the first result.
func (h *Hook) Initialize(emitter *lifecycle.Emitter) error {
	h.initOnce.Do(func() {
		h.policy, h.initErr = policy.Middleware(h.cfg.Policy, h.policies)
		if h.initErr != nil {
			h.logger.Err(h.initErr).Str("func", "*Hook.Initialize").Msg("error resolving blueprint policy")
			return
		}

		emitter.On(lifecycle.EventRouterBefore, h.onRouterBefore)
		h.logger.Info().Str("prefix", h.cfg.Prefix).Str("policy", h.cfg.Policy).Msg("blueprint hook initialized")
	})

	return h.initErr
}

func (h *Hook) onRouterBefore(ctx context.Context, payload any) error {
	router, ok := payload.(chi.Router)
	if !ok {
		return fmt.Errorf("%w: got %T", ErrUnexpectedPayload, payload)
	}

	var err error
	h.bindOnce.Do(func() {
		err = h.bindRoutes(router)
	})
	return err
}

// Routes returns the bound routes in binding order.
func (h *Hook) Routes() []Route {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]Route(nil), h.routes...)
}

func (h *Hook) bindRoutes(r chi.Router) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	bound := make(map[string]struct{})
	bind := func(route Route, handler http.HandlerFunc) error {
		if _, ok := bound[route.Path]; ok {
			return fmt.Errorf("%w: %s %s", ErrDuplicateRoute, route.Method, route.Path)
		}
		bound[route.Path] = struct{}{}

		r.Method(route.Method, route.Path, h.chain(route, handler))
		h.routes = append(h.routes, route)
		if h.metrics != nil {
			h.metrics.RouteBound(route.Model)
		}
		return nil
	}

	for _, m := range h.registry.Models() {
		controller, ok := h.registry.Controller(m.Identity)
		if !ok {
			h.logger.Debug().Str("model", m.Identity).Msg("model has no controller, skipping")
			continue
		}

		pluralize := h.cfg.Pluralize && controller.ShouldPluralize()
		base := h.cfg.Prefix + "/" + segment(m.Identity, pluralize)

		actions := []struct {
			name    string
			handler http.HandlerFunc
		}{
			{ActionCount, orDefault(h.cfg.Actions.Count, h.count)},
			{ActionAssociations, orDefault(h.cfg.Actions.Association, h.associations)},
			{ActionSchema, orDefault(h.cfg.Actions.Schema, h.schema)},
			{ActionFilters, orDefault(h.cfg.Actions.Filters, h.filters)},
			{ActionTitles, orDefault(h.cfg.Actions.Titles, h.titles)},
		}
		for _, a := range actions {
			route := Route{Method: http.MethodGet, Path: base + "/" + a.name, Model: m.Identity, Action: a.name}
			if err := bind(route, a.handler); err != nil {
				return err
			}
		}

		aliasByPath := make(map[string]string)
		for _, assoc := range m.Associations {
			if !assoc.IsCollection() {
				continue
			}
			route := Route{
				Method: http.MethodGet,
				Path:   base + "/{" + criteria.IDParam + "}/" + segment(assoc.Collection, pluralize) + "/count",
				Model:  m.Identity,
				Action: ActionAssociationCount,
				Alias:  assoc.Alias,
			}
			// Aliases sharing a collection share the path; the first one wins.
			if first, ok := aliasByPath[route.Path]; ok {
				h.logger.Warn().
					Str("model", m.Identity).
					Str("path", route.Path).
					Str("alias", assoc.Alias).
					Str("bound_alias", first).
					Msg("association count route shadowed by an earlier alias, skipping")
				continue
			}
			aliasByPath[route.Path] = assoc.Alias
			if err := bind(route, h.associationCount); err != nil {
				return err
			}
		}
	}

	h.logger.Info().Int("routes", len(h.routes)).Msg("blueprint routes bound")
	return nil
}

// chain wraps handler with route options, metrics and the policy, in that
// order from the outside in. Requests rejected by the policy are counted.
func (h *Hook) chain(route Route, handler http.HandlerFunc) http.Handler {
	next := h.policy(handler)
	if h.metrics != nil {
		next = h.metrics.InstrumentRoute(route.Model, route.Action)(next)
	}

	return withOptions(RouteOptions{
		Controller: route.Model,
		Alias:      route.Alias,
		Action:     route.Action,
	})(next)
}

func segment(identity string, pluralize bool) string {
	if pluralize {
		return inflection.Plural(identity)
	}
	return identity
}

func orDefault(override, fallback http.HandlerFunc) http.HandlerFunc {
	if override != nil {
		return override
	}
	return fallback
}

// resolveModel returns the model named by the route options of r.
func (h *Hook) resolveModel(r *http.Request) (*models.Model, error) {
	opts, _ := OptionsFromRequest(r)

	name := opts.modelName()
	if name == "" {
		return nil, ErrNoModelInRouteOptions
	}

	m, ok := h.registry.Model(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return m, nil
}
