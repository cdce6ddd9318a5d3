package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var corsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
	},
	AllowedHeaders: []string{"*"},
	ExposedHeaders: []string{"Location", traceIDHeader},
	MaxAge:         300,
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)
	router.Use(cors.Handler(corsOptions))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version/", h.getServerVersion)

	router.Route("/api/sections", func(r chi.Router) {
		r.Get("/", h.getHiveSections)
		r.Post("/", h.createHiveSection)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.getHiveSection)
			r.Put("/", h.updateHiveSection)
			r.Delete("/", h.deleteHiveSection)
			r.Put("/status/{deletedStatus}", h.setHiveSectionStatus)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
