package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/surveybasket/api/internal/core/ports"
)

func NewHandler(authHandler *AuthHandler, userHandler *UserHandler, pollHandler *PollHandler, signer ports.TokenSigner) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/refresh", authHandler.Refresh)
		r.Post("/revoke", authHandler.Revoke)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/polls", func(r chi.Router) {
			r.Get("/", pollHandler.GetAll)
			r.Get("/{id}", pollHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(RequireAuth(signer))
				r.Post("/", pollHandler.Create)
				r.Put("/{id}", pollHandler.Update)
				r.Delete("/{id}", pollHandler.Delete)
				r.Put("/{id}/toggle-publish", pollHandler.TogglePublish)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(signer))
			r.Get("/users/me", userHandler.GetMe)
		})
	})

	return r
}
