package criteria

import "errors"

// Errors returned by [Parse]. All of them describe a malformed request.
var (
	// ErrInvalidWhere is returned when the "where" parameter is not a JSON object.
	ErrInvalidWhere = errors.New("invalid `where` parameter")
	// ErrUnknownAttribute is returned for a criteria key that names neither
	// an attribute nor the primary key of the model.
	ErrUnknownAttribute = errors.New("unknown attribute in criteria")
	// ErrUnknownModifier is returned for an unsupported comparison modifier.
	ErrUnknownModifier = errors.New("unknown criteria modifier")
	// ErrInvalidValue is returned when a modifier receives a value of the
	// wrong shape (e.g. "in" without a list).
	ErrInvalidValue = errors.New("invalid criteria value")
)
