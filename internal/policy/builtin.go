package policy

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/blueprint-utils/internal/config"
	"github.com/MKhiriev/blueprint-utils/internal/logger"
	"github.com/MKhiriev/blueprint-utils/internal/utils"
)

// Names of the built-in policies.
const (
	NameIsAuthenticated = "isauthenticated"
	NameAPIKey          = "apikey"
	NameAllowAll        = "allowall"
	NameDenyAll         = "denyall"
)

// APIKeyHeader carries the key checked by the apikey policy.
const APIKeyHeader = "X-API-Key"

// apiKeySubject is stored as the request subject after an api key check.
const apiKeySubject = "apikey"

// NewRegistryWithBuiltins returns a registry holding allowall and denyall,
// plus isauthenticated when a token sign key is configured and apikey when
// an api key hash is configured.
func NewRegistryWithBuiltins(cfg config.App) (*Registry, error) {
	r := NewRegistry()

	builtins := map[string]Policy{
		NameAllowAll: AllowAll,
		NameDenyAll:  DenyAll,
	}
	if cfg.TokenSignKey != "" {
		builtins[NameIsAuthenticated] = IsAuthenticated(cfg.TokenSignKey, cfg.TokenIssuer)
	}
	if cfg.APIKeyHash != "" {
		builtins[NameAPIKey] = APIKey(cfg.APIKeyHash)
	}

	for name, p := range builtins {
		if err := r.Register(name, p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// IsAuthenticated accepts requests carrying a valid HS256 bearer token and
// stores its subject in the request context.
func IsAuthenticated(signKey, issuer string) Policy {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				log.Err(err).Str("policy", NameIsAuthenticated).Msg("request rejected")
				_, _ = utils.WriteError(w, err.Error(), http.StatusUnauthorized)
				return
			}

			token, err := utils.ValidateAndParseJWTToken(tokenString, signKey, issuer)
			if err != nil {
				log.Err(err).Str("policy", NameIsAuthenticated).Msg("request rejected")
				_, _ = utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), token.Subject)))
		})
	}
}

// APIKey accepts requests whose X-API-Key header matches the bcrypt hash.
func APIKey(hash string) Policy {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			key := r.Header.Get(APIKeyHeader)
			if key == "" {
				log.Err(ErrMissingAPIKey).Str("policy", NameAPIKey).Msg("request rejected")
				_, _ = utils.WriteError(w, ErrMissingAPIKey.Error(), http.StatusUnauthorized)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
				log.Err(err).Str("policy", NameAPIKey).Msg("request rejected")
				_, _ = utils.WriteError(w, ErrInvalidAPIKey.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.WithSubject(r.Context(), apiKeySubject)))
		})
	}
}

func AllowAll(next http.Handler) http.Handler {
	return next
}

func DenyAll(_ http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteError(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	})
}
