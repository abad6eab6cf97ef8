// Package postit собирает HTTP-приложение сервиса заметок.
package postit

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация swagger-спецификации.
	_ "github.com/magabrotheeeer/postit/docs"
	"github.com/magabrotheeeer/postit/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/postit/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/postit/internal/http/handlers/health"
	"github.com/magabrotheeeer/postit/internal/http/handlers/note/create"
	"github.com/magabrotheeeer/postit/internal/http/handlers/note/list"
	"github.com/magabrotheeeer/postit/internal/http/handlers/note/read"
	"github.com/magabrotheeeer/postit/internal/http/handlers/note/remove"
	"github.com/magabrotheeeer/postit/internal/http/handlers/note/update"
	"github.com/magabrotheeeer/postit/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/postit/internal/services/auth"
	noteservice "github.com/magabrotheeeer/postit/internal/services/note"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	authService *authservice.Service,
	noteService *noteservice.Service,
	storage health.Pinger,
	registry *prometheus.Registry,
) {
	metrics := middlewarectx.NewMetrics(registry)

	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		metrics.Handler,
		middlewarectx.Identity(authService, logger),
	)

	// Открытые конечные точки
	r.Post("/users", register.New(logger, authService).ServeHTTP)
	r.Post("/login", login.New(logger, authService).ServeHTTP)
	r.Get("/health", health.New(logger, storage).ServeHTTP)

	// Заметки доступны только с личностью
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.RequireIdentity(logger))
		r.Get("/notes", list.New(logger, noteService).ServeHTTP)
		r.Post("/notes", create.New(logger, noteService).ServeHTTP)
		r.Get("/notes/{id}", read.New(logger, noteService).ServeHTTP)
		r.Put("/notes/{id}", update.New(logger, noteService).ServeHTTP)
		r.Delete("/notes/{id}", remove.New(logger, noteService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
