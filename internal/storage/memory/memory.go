// Package memory реализует хранилище регистраций в памяти процесса.
//
// Store единолично владеет записями: наружу отдаются только копии.
// Просроченные записи удаляются при чтении списка (ListActive),
// других способов удаления нет.
package memory

import (
	"sync"
	"time"

	"github.com/magabrotheeeer/active-users/internal/metrics"
	"github.com/magabrotheeeer/active-users/internal/models"
)

// Store хранит регистрации в порядке добавления.
type Store struct {
	mu    sync.Mutex
	items []models.Registration
}

// New создает пустое хранилище.
func New() *Store {
	return &Store{}
}

// Add добавляет полностью заполненную регистрацию. Проверки выполняет вызывающий.
func (s *Store) Add(reg models.Registration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, reg)
	metrics.RegistrationsStored.Set(float64(len(s.items)))
}

// ListActive возвращает регистрации с ExpiresAt строго позже now в порядке
// добавления и заменяет содержимое хранилища ровно этим набором.
// Записи с ExpiresAt <= now удаляются безвозвратно.
func (s *Store) ListActive(now time.Time) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]models.Registration, 0, len(s.items))
	for _, reg := range s.items {
		if reg.ActiveAt(now) {
			active = append(active, reg)
		}
	}

	if pruned := len(s.items) - len(active); pruned > 0 {
		metrics.RegistrationsExpired.Add(float64(pruned))
	}
	s.items = active
	metrics.RegistrationsStored.Set(float64(len(s.items)))

	out := make([]models.Registration, len(active))
	copy(out, active)
	return out
}

// Len возвращает количество записей, включая ещё не удалённые просроченные.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}
