package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnavailable         = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")

	ErrInvalidBaseURL = errors.New("invalid base url")
	ErrInvalidWhere   = errors.New("invalid where criteria")
)
