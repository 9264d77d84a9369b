// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/blueprint-utils/internal/utils"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. Blueprint routes
// are GET only, so a request with another method on a known path answers
// 404 instead of 405, hiding which paths exist. Should the method match
// after all (for example a parameterised route registered later), the
// request is served normally.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			router.ServeHTTP(w, r)
			return
		}

		_, _ = utils.WriteError(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}
