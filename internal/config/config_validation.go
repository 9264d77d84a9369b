// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. It also fills defaults
// that cannot be expressed as zero values.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	switch strings.ToLower(cfg.Storage.DB.Driver) {
	case "", DriverSQLite, "sqlite":
		cfg.Storage.DB.Driver = DriverSQLite
	case DriverPostgres, "pgx", "postgresql":
		cfg.Storage.DB.Driver = DriverPostgres
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Models.Dir == "" {
		return ErrInvalidModelsConfigs
	}

	if cfg.Blueprints.Prefix != "" && !strings.HasPrefix(cfg.Blueprints.Prefix, "/") {
		return fmt.Errorf("%w: prefix must start with '/'", ErrInvalidBlueprintsConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" {
		return ErrInvalidClientConfigs
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidClientConfigs)
	}

	return nil
}
