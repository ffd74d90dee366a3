// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-sol-vault/internal/app"
	"github.com/MKhiriev/go-sol-vault/internal/utils"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A known path
// requested with an unregistered method is answered with a JSON 404 instead
// of chi's 405, so the API does not reveal which paths exist.
//
// Only exact patterns are compared; the gateway has no parameterised routes.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		utils.WriteError(w, r, http.StatusNotFound, app.MsgNotFound, 0)
	}
}
