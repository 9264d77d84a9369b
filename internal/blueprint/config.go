package blueprint

import (
	"net/http"

	"github.com/MKhiriev/blueprint-utils/internal/config"
)

// Config controls route binding.
type Config struct {
	// Prefix is prepended to every route, e.g. "/api". May be empty.
	Prefix string
	// Pluralize turns the model and collection segments into plurals unless
	// the controller opts out.
	Pluralize bool
	// Policy names the policy placed in front of every route. Empty means
	// no policy.
	Policy string
	// Actions replace default handlers.
	Actions Actions
}

// Actions holds optional replacements for the default handlers. A nil field
// keeps the default. Replacements can read the route options with
// [OptionsFromRequest].
type Actions struct {
	Count       http.HandlerFunc
	Association http.HandlerFunc
	Schema      http.HandlerFunc
	Filters     http.HandlerFunc
	Titles      http.HandlerFunc
}

// NewConfig builds a Config from the application configuration.
func NewConfig(cfg config.StructuredConfig) Config {
	return Config{
		Prefix:    cfg.Blueprints.Prefix,
		Pluralize: cfg.Blueprints.Pluralize,
		Policy:    cfg.BlueprintUtils.Policy,
	}
}
