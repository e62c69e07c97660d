// Package registration содержит бизнес-логику регистрации активных пользователей:
// проверку данных формы, вычисление времени истечения и выдачу списка активных записей.
package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/go-playground/validator"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/active-users/internal/lib/sl"
	"github.com/magabrotheeeer/active-users/internal/metrics"
	"github.com/magabrotheeeer/active-users/internal/models"
)

// Наибольшая длительность в минутах, которую можно представить time.Duration.
const maxMinutes = math.MaxInt64 / int64(time.Minute)

// Store описывает хранилище регистраций.
type Store interface {
	// Add добавляет регистрацию.
	Add(reg models.Registration)
	// ListActive возвращает активные на момент now записи и удаляет остальные.
	ListActive(now time.Time) []models.Registration
}

// Service реализует регистрацию и выдачу списка активных пользователей.
type Service struct {
	store    Store
	serials  mapset.Set[string]
	validate *validator.Validate
	now      func() time.Time
	log      *slog.Logger
}

// Option настраивает Service.
type Option func(*Service)

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService создает Service с заданным списком допустимых серийных номеров.
func NewService(store Store, serials []string, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		serials:  mapset.NewSet[string](serials...),
		validate: validator.New(),
		now:      time.Now,
		log:      log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register проверяет заявку и сохраняет регистрацию.
// Проверки идут по порядку: все поля заполнены, серийный номер допустим,
// длительность — целое число минут больше нуля. При ошибке возвращается
// *ValidationError и хранилище не меняется.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (models.Registration, error) {
	const op = "services.registration.Register"
	log := s.log.With(slog.String("op", op))

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.Registration{}, fmt.Errorf("%s: %w", op, err)
		}
		return models.Registration{}, s.reject(ctx, log, newValidationError(ErrFieldsRequired, err))
	}

	if !s.serials.Contains(req.Serial) {
		return models.Registration{}, s.reject(ctx, log, ErrInvalidSerial)
	}

	minutes, err := strconv.ParseInt(req.DCALength, 10, 64)
	if err != nil {
		return models.Registration{}, s.reject(ctx, log, newValidationError(ErrInvalidDuration, err))
	}
	if minutes <= 0 || minutes > maxMinutes {
		return models.Registration{}, s.reject(ctx, log, ErrInvalidDuration)
	}

	reg := models.Registration{
		ID:          uuid.New(),
		Username:    req.Username,
		Amount:      req.Amount,
		ExitAddress: req.ExitAddress,
		ExpiresAt:   s.now().Add(time.Duration(minutes) * time.Minute),
	}
	s.store.Add(reg)
	metrics.RegistrationsCreated.Inc()

	log.DebugContext(ctx, "registration stored", sl.Registration(reg))
	return reg, nil
}

// ListActive возвращает активные на текущий момент регистрации в порядке добавления.
func (s *Service) ListActive(ctx context.Context) []models.Registration {
	const op = "services.registration.ListActive"

	res := s.store.ListActive(s.now())
	s.log.DebugContext(ctx, "active registrations listed",
		slog.String("op", op),
		slog.Int("count", len(res)),
	)
	return res
}

// RunSweeper периодически удаляет просроченные записи, даже если список никто не читает.
// При interval <= 0 сразу возвращает управление. Останавливается при отмене ctx.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) {
	const op = "services.registration.RunSweeper"
	if interval <= 0 {
		return
	}
	log := s.log.With(slog.String("op", op))
	log.Info("expiry sweeper started", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("expiry sweeper stopped")
			return
		case <-ticker.C:
			left := len(s.store.ListActive(s.now()))
			log.Debug("expired registrations swept", slog.Int("active", left))
		}
	}
}

func (s *Service) reject(ctx context.Context, log *slog.Logger, verr *ValidationError) error {
	metrics.RegistrationsRejected.WithLabelValues(metricReason(verr.Reason)).Inc()
	log.DebugContext(ctx, "registration rejected", slog.String("reason", string(verr.Reason)))
	return verr
}

func metricReason(reason ErrorReason) string {
	switch reason {
	case REASON_FIELDS_REQUIRED:
		return metrics.ReasonFieldsRequired
	case REASON_INVALID_SERIAL:
		return metrics.ReasonInvalidSerial
	case REASON_INVALID_DURATION:
		return metrics.ReasonInvalidDuration
	default:
		return "unknown"
	}
}
