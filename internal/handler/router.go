package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the HTTP surface: the two form endpoints under /api
// plus a liveness probe.
func NewRouter(log *slog.Logger, contact *ContactHandler, careers *CareersHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(RequestID)
	r.Use(Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/contact", contact.ServeHTTP)
		r.Post("/careers", careers.ServeHTTP)
	})

	return r
}
