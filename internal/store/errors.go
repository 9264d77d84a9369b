package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when the criteria of an association count
	// match no parent record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrUnknownColumn is returned when an attribute cannot be resolved to a
	// column of the model.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrInvalidAssociation is returned when an association count is asked
	// for something that is not a collection.
	ErrInvalidAssociation = errors.New("association is not a collection")

	// ErrTransient wraps driver errors classified as [Retryable]. The same
	// read may succeed when attempted again.
	ErrTransient = errors.New("transient database error")

	// ErrUnsupportedDriver is returned by [NewDB] for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an unsupported operator).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
