package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/sitecraft-backend/internal/api/handlers"
	"github.com/baharkarakas/sitecraft-backend/internal/config"
	"github.com/baharkarakas/sitecraft-backend/internal/metrics"
	"github.com/baharkarakas/sitecraft-backend/internal/middleware"
)

type RouterDeps struct {
	Cfg        config.Config
	UserSvc    handlers.UserService
	ProjectSvc handlers.ProjectService
	RequestSvc handlers.RequestService
}

func NewRouter(d RouterDeps) http.Handler {
	users := handlers.NewUserHandler(d.UserSvc)
	projects := handlers.NewProjectHandler(d.ProjectSvc)
	requests := handlers.NewRequestHandler(d.RequestSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.HTTPMetrics)
	r.Use(middleware.RateLimit(d.Cfg.RateRPS, d.Cfg.RateBurst))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", users.Register)
			r.Get("/", users.List)
			r.Get("/{id}", users.Get)
			r.Get("/{id}/projects", projects.ListByUser)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", projects.Create)
			r.Get("/{id}", projects.Get)
			r.Patch("/{id}", projects.Update)
			r.Delete("/{id}", projects.Delete)
			r.Post("/{id}/publish", projects.Publish)
			r.Delete("/{id}/publish", projects.Unpublish)
		})

		r.Post("/validate/website-generator", requests.WebsiteGenerator)
		r.Post("/validate/code-assistance", requests.CodeAssistance)
	})

	return r
}
