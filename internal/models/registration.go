// Package models содержит доменные структуры сервиса активных пользователей,
// а также структуру для приёма данных из HTML-формы.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration представляет одну регистрацию активного пользователя.
// ExpiresAt вычисляется один раз при создании и больше не меняется.
type Registration struct {
	ID          uuid.UUID // Идентификатор записи, используется для логов
	Username    string    // Имя пользователя, не уникально
	Amount      string    // Сумма в том виде, в котором её ввели
	ExitAddress string    // Адрес вывода
	ExpiresAt   time.Time // Момент, после которого запись перестаёт быть активной
}

// ActiveAt сообщает, активна ли регистрация в момент now.
func (r Registration) ActiveAt(now time.Time) bool {
	return r.ExpiresAt.After(now)
}

// RegisterRequest используется для приёма данных из формы регистрации.
// Серийный номер проверяется, но в Registration не сохраняется.
type RegisterRequest struct {
	Username    string `form:"username" validate:"required"`
	DCALength   string `form:"dca_length" validate:"required"` // Длительность в минутах
	Amount      string `form:"amount" validate:"required"`
	ExitAddress string `form:"exit_addr" validate:"required"`
	Serial      string `form:"serial" validate:"required"`
}
