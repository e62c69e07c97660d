// Package sl содержит вспомогательные функции для работы с логгером slog.
// Основная цель — единообразно формировать структурированные поля лога
// для ошибок и доменных сущностей.
package sl

import (
	"log/slog"
	"time"

	"github.com/magabrotheeeer/active-users/internal/models"
)

// Err возвращает slog.Attr с ключом "error" и значением текста ошибки.
//
// Пример:
//
//	log.Error("failed to do something", sl.Err(err))
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Registration возвращает группу "registration" с полями записи.
// Адрес вывода и сумма в лог не попадают.
func Registration(reg models.Registration) slog.Attr {
	return slog.Group("registration",
		slog.String("id", reg.ID.String()),
		slog.String("username", reg.Username),
		slog.String("expires_at", reg.ExpiresAt.UTC().Format(time.RFC3339)),
	)
}
