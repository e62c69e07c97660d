// Package register реализует HTTP-обработчик отправки формы регистрации.
//
// Handler разбирает тело формы, передаёт данные сервису и при успехе
// перенаправляет на главную страницу. Ошибки проверки возвращаются
// пользователю простым текстом с кодом 200.
package register

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/active-users/internal/http/response"
	"github.com/magabrotheeeer/active-users/internal/lib/sl"
	"github.com/magabrotheeeer/active-users/internal/models"
	"github.com/magabrotheeeer/active-users/internal/services/registration"
)

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Registration, error)
}

// Handler управляет запросами POST /register.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.registration.register"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.PlainText(w, r, "invalid form data")
		return
	}

	req := models.RegisterRequest{
		Username:    r.PostForm.Get("username"),
		DCALength:   r.PostForm.Get("dca_length"),
		Amount:      r.PostForm.Get("amount"),
		ExitAddress: r.PostForm.Get("exit_addr"),
		Serial:      r.PostForm.Get("serial"),
	}

	reg, err := h.service.Register(r.Context(), req)
	if err != nil {
		var verr *registration.ValidationError
		if errors.As(err, &verr) {
			log.Info("registration rejected", slog.String("reason", string(verr.Reason)))
			response.Message(w, r, verr.Message)
			return
		}
		log.Error("failed to register", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.PlainText(w, r, "could not register")
		return
	}

	log.Info("registration accepted", sl.Registration(reg))
	http.Redirect(w, r, "/", http.StatusFound)
}
