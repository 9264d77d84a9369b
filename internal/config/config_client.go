package config

import (
	"fmt"
	"time"
)

// ClientConfig is the configuration of the command-line client assembled
// from [StructuredConfig].
type ClientConfig struct {
	// BaseURL is the blueprint server address.
	BaseURL string
	// Prefix is the blueprint route prefix used by the server.
	Prefix string
	// Token is an optional bearer token.
	Token string
	// APIKey is an optional API key.
	APIKey string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// Server-only settings are not validated here, so the client can run with
// nothing but a base URL.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		Prefix:         cfg.Client.Prefix,
		Token:          cfg.Client.Token,
		APIKey:         cfg.Client.APIKey,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	return clientCfg, clientCfg.validate()
}
