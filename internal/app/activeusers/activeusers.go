package activeusers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/active-users/internal/config"
	"github.com/magabrotheeeer/active-users/internal/lib/sl"
	"github.com/magabrotheeeer/active-users/internal/services/registration"
	"github.com/magabrotheeeer/active-users/internal/storage/memory"
)

const shutdownTimeout = 15 * time.Second

type App struct {
	server        *http.Server
	logger        *slog.Logger
	service       *registration.Service
	sweepInterval time.Duration
}

func New(cfg *config.Config, logger *slog.Logger, opts ...registration.Option) (*App, error) {
	serials := cfg.Registry.SerialList()
	if len(serials) == 0 {
		return nil, errors.New("app.New: no valid serials configured")
	}

	store := memory.New()
	registrationService := registration.NewService(store, serials, logger, opts...)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, registrationService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server:        srv,
		logger:        logger,
		service:       registrationService,
		sweepInterval: cfg.Registry.SweepInterval,
	}, nil
}

// Handler возвращает корневой обработчик приложения.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

func (a *App) Run(ctx context.Context) error {
	go a.service.RunSweeper(ctx, a.sweepInterval)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		if err := a.server.Shutdown(timeoutCtx); err != nil {
			a.logger.Error("failed to shutdown HTTP server", sl.Err(err))
			return err
		}
		return nil
	}
}
