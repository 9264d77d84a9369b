package registry

import "errors"

var (
	// ErrInvalidIdentity is returned for an empty identity or one that is not
	// lowercase.
	ErrInvalidIdentity = errors.New("invalid model identity")
	// ErrDuplicateModel is returned when an identity is registered twice.
	ErrDuplicateModel = errors.New("model already registered")
	// ErrInvalidAssociation is returned when an association is malformed.
	ErrInvalidAssociation = errors.New("invalid association")
	// ErrUnknownAssociationTarget is returned by Link when an association
	// references a model that is not registered.
	ErrUnknownAssociationTarget = errors.New("association references unknown model")
	// ErrDecodingModel is returned when a definition file cannot be decoded.
	ErrDecodingModel = errors.New("error decoding model definition")
)
