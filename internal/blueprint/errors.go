package blueprint

import "errors"

var (
	// ErrNoModelInRouteOptions is returned by a handler whose route options
	// name neither a model nor a controller.
	ErrNoModelInRouteOptions = errors.New(`no "model" specified in route options`)

	// ErrUnknownModel is returned by a handler whose route options name a
	// model that is not registered.
	ErrUnknownModel = errors.New(`invalid route option "model": unknown model`)

	// ErrUnexpectedPayload is returned when router:before is emitted with
	// something other than a chi.Router.
	ErrUnexpectedPayload = errors.New("router:before payload is not a chi.Router")

	// ErrDuplicateRoute is returned when two models resolve to the same path.
	ErrDuplicateRoute = errors.New("blueprint route bound twice")
)
