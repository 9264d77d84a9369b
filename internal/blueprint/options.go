package blueprint

import (
	"context"
	"net/http"

	"github.com/MKhiriev/blueprint-utils/internal/logger"
)

// RouteOptions are attached to every request served by a blueprint route.
type RouteOptions struct {
	// Model is the identity of the model served. When empty, Controller is
	// used instead.
	Model string
	// Controller is the identity of the controller the route belongs to.
	Controller string
	// Alias is the association counted by an association count route.
	Alias string
	// Action names the blueprint action, e.g. "count".
	Action string
}

type optionsCtxKey struct{}

// WithOptions returns a copy of ctx carrying opts.
func WithOptions(ctx context.Context, opts RouteOptions) context.Context {
	return context.WithValue(ctx, optionsCtxKey{}, opts)
}

// OptionsFromRequest returns the route options of r.
func OptionsFromRequest(r *http.Request) (RouteOptions, bool) {
	opts, ok := r.Context().Value(optionsCtxKey{}).(RouteOptions)
	return opts, ok
}

func (o RouteOptions) modelName() string {
	if o.Model != "" {
		return o.Model
	}
	return o.Controller
}

// withOptions stores opts in the request context together with a child
// logger annotated with the route.
func withOptions(opts RouteOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r).WithRoute(opts.modelName(), opts.Action)

			ctx := log.WithContext(WithOptions(r.Context(), opts))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
