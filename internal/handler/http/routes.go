package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/health", h.health)

	router.Get("/api/items", h.listItems)
	router.Post("/api/items", h.createItem)
	// must stay ahead of the {id} routes
	router.Delete("/api/items/completed", h.clearCompleted)
	router.Patch("/api/items/{id}", h.updateItem)
	router.Delete("/api/items/{id}", h.deleteItem)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
