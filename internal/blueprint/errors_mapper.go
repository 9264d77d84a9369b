package blueprint

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/blueprint-utils/internal/criteria"
	"github.com/MKhiriev/blueprint-utils/internal/service"
	"github.com/MKhiriev/blueprint-utils/internal/store"
)

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []struct {
	err    error
	status int
}{
	{criteria.ErrInvalidWhere, http.StatusBadRequest},
	{criteria.ErrUnknownAttribute, http.StatusBadRequest},
	{criteria.ErrUnknownModifier, http.StatusBadRequest},
	{criteria.ErrInvalidValue, http.StatusBadRequest},

	{store.ErrRecordNotFound, http.StatusNotFound},

	{store.ErrTransient, http.StatusServiceUnavailable},
	{context.DeadlineExceeded, http.StatusGatewayTimeout},

	{ErrNoModelInRouteOptions, http.StatusInternalServerError},
	{ErrUnknownModel, http.StatusInternalServerError},
	{service.ErrUnknownAssociation, http.StatusInternalServerError},
	{store.ErrUnknownColumn, http.StatusInternalServerError},
	{store.ErrInvalidAssociation, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
