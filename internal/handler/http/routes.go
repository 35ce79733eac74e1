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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users/register", h.register)
		r.Post("/api/users/login", h.login)
	})

	// routes that require a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users/me", func(r chi.Router) {
			r.Get("/", h.getMe)
			r.Put("/", h.updateMe)
			r.Delete("/", h.deleteMe)
		})

		r.Route("/api/bookmarks", func(r chi.Router) {
			r.Post("/", h.createBookmark)
			r.Get("/", h.listBookmarks)

			r.Route("/{bookmarkID}", func(r chi.Router) {
				r.Get("/", h.getBookmark)
				r.Put("/", h.updateBookmark)
				r.Delete("/", h.deleteBookmark)
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
