// Package activeusers собирает HTTP-приложение сервиса активных пользователей.
package activeusers

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/magabrotheeeer/active-users/internal/http/handlers/health"
	"github.com/magabrotheeeer/active-users/internal/http/handlers/registration/list"
	"github.com/magabrotheeeer/active-users/internal/http/handlers/registration/register"
	"github.com/magabrotheeeer/active-users/internal/services/registration"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, registrationService *registration.Service) {
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	r.Get("/", list.New(logger, registrationService).ServeHTTP)
	r.Post("/register", register.New(logger, registrationService).ServeHTTP)
	r.Get("/health", health.New().ServeHTTP)

	r.Handle("/metrics", promhttp.Handler())
}
