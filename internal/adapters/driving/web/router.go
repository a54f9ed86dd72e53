package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// NewRouter builds the HTTP routes for the content API.
func NewRouter(content driving.ContentService) http.Handler {
	h := NewHandler(content)

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, recoverMiddleware, accessLogMiddleware)

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// "slugs" is registered first so it is never taken for a document slug.
	api := r.PathPrefix("/content").Subrouter()
	api.HandleFunc("/{type}/slugs", h.Slugs).Methods(http.MethodGet)
	api.HandleFunc("/{type}/{slug}", h.Document).Methods(http.MethodGet)
	api.HandleFunc("/{type}", h.Collection).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}
