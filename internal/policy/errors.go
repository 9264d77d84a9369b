package policy

import "errors"

var (
	// ErrUnknownPolicy is returned when the configured policy name is not
	// registered.
	ErrUnknownPolicy = errors.New("unknown policy")

	// ErrDuplicatePolicy is returned by [Registry.Register] for a name that
	// is already taken.
	ErrDuplicatePolicy = errors.New("policy already registered")

	// ErrInvalidPolicy is returned for an empty name or a nil policy.
	ErrInvalidPolicy = errors.New("invalid policy")

	ErrMissingAPIKey = errors.New("missing `X-API-Key` header")
	ErrInvalidAPIKey = errors.New("invalid api key")
)
