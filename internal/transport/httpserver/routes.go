package httpserver

import (
	"net/http"
	"time"

	"herdbook-go/internal/config"
	"herdbook-go/internal/transport/httpserver/handler"
	authmw "herdbook-go/internal/transport/httpserver/middleware"
	"herdbook-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, sessions authmw.SessionVerifier, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)
		r.Post("/auth/signup", handlers.Signup)
		r.Get("/breeds", handlers.ListBreeds)

		auth := authmw.NewTokenAuth(cfg.Auth, sessions, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/animals", handlers.ListAnimals)
			r.Post("/animals", handlers.CreateAnimal)
			// Literal route before the id pattern so "stats" never matches {id}.
			r.Get("/animals/stats", handlers.AnimalStats)
			r.Get("/animals/{id}", handlers.GetAnimal)
			r.Put("/animals/{id}", handlers.UpdateAnimal)
			r.Delete("/animals/{id}", handlers.DeleteAnimal)

			r.Get("/stats/breeds", handlers.BreedDistribution)

			r.Get("/notifications", handlers.ListNotifications)
			r.Patch("/notifications/mark-all-read", handlers.MarkAllNotificationsRead)

			r.Get("/users/me", handlers.GetMe)
			r.Put("/users/me", handlers.UpdateMe)
		})
	})

	return r
}
