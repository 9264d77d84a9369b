package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN or an unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidModelsConfigs indicates that no model definitions directory
	// was configured.
	ErrInvalidModelsConfigs = errors.New("invalid models configuration")
	// ErrInvalidBlueprintsConfigs indicates invalid blueprint route settings.
	ErrInvalidBlueprintsConfigs = errors.New("invalid blueprints configuration")
	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, a missing base URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
