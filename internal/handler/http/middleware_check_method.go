// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/katla-sections/internal/logger"
)

// knownMethods are probed to tell a wrong method from an unknown path.
var knownMethods = []string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete,
}

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed whenever a path matches a route
// that does not handle the request method. This handler answers with
// notFound instead, so unsupported methods look exactly like unknown routes
// and the set of supported methods is not leaked.
func CheckHTTPMethod(router chi.Routes, notFound http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, method := range knownMethods {
			if method != r.Method && router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				logger.FromRequest(r).Debug().
					Str("func", "CheckHTTPMethod").
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("method is not supported by route")
				break
			}
		}

		notFound(w, r)
	}
}
