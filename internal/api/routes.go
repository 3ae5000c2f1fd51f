package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/profiles", s.handleListProfiles)
		r.Post("/profiles", s.handleCreateProfile)
		r.Delete("/profiles/{id}", s.handleDeleteProfile)
		r.Post("/profiles/{id}/sync", s.handleSync)
		r.Get("/profiles/{id}/games", s.handleGames)
		r.Get("/profiles/{id}/stats", s.handleStats)
		r.Get("/profiles/{id}/insight", s.handleInsight)
	})

	return r
}
