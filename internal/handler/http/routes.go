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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/account/register", h.register)
		r.Post("/account/login", h.login)
	})

	// routes behind the session guard
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/user/list", h.listUsers)
		r.Get("/project/list", h.listProjects)
		r.Post("/project/create", h.createProject)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
