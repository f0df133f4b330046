// Package server assembles the HTTP router: middleware, API routes, swagger
// UI, and the static landing-page fallback.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/yudzxml/updates-service/internal/config"
	appMiddleware "github.com/yudzxml/updates-service/internal/middleware"
	"github.com/yudzxml/updates-service/internal/response"
	"github.com/yudzxml/updates-service/internal/update"
	"github.com/yudzxml/updates-service/web"
)

// New builds the service router around the given update handler.
func New(cfg *config.Config, updates *update.Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", appMiddleware.AdminKeyHeader},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/updates", func(r chi.Router) {
		r.MethodNotAllowed(methodNotAllowed)

		// Preflights are answered by the CORS middleware; a bare OPTIONS
		// still gets an empty 200.
		r.Options("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r.With(appMiddleware.RequireReadKey(cfg.PublicKey)).Get("/", updates.List)

		r.Group(func(r chi.Router) {
			r.Use(appMiddleware.RequireAdminKey(cfg.AdminKey))
			r.Post("/", updates.Publish)
			r.Delete("/", updates.Delete)
		})
	})

	// Everything else serves the landing page (single-page-app fallback).
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(web.Index())
	})

	return r
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST, DELETE, OPTIONS")
	response.Error(w, http.StatusMethodNotAllowed, "Method "+r.Method+" Not Allowed")
}
