package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/blueprint-utils/internal/lifecycle"
)

// Init builds the router and emits router:before so that listeners can bind
// their routes on it.
func (h *Handler) Init(ctx context.Context) (*chi.Mux, error) {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	if h.emitter != nil {
		if err := h.emitter.Emit(ctx, lifecycle.EventRouterBefore, chi.Router(router)); err != nil {
			return nil, fmt.Errorf("error binding routes: %w", err)
		}
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router, nil
}
