// Package list реализует HTTP-обработчик главной страницы со списком активных пользователей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/active-users/internal/lib/sl"
	"github.com/magabrotheeeer/active-users/internal/models"
	"github.com/magabrotheeeer/active-users/internal/view"
)

// Service описывает интерфейс получения активных регистраций.
type Service interface {
	ListActive(ctx context.Context) []models.Registration
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res := h.service.ListActive(r.Context())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderIndex(w, view.NewIndexPage(res)); err != nil {
		log.Error("failed to render index", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.PlainText(w, r, "internal error")
		return
	}

	log.Debug("list active users", slog.Int("count", len(res)))
}
