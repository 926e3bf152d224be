package hours

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// MemoryStore хранилище в памяти процесса, для одного экземпляра сервиса
type MemoryStore struct {
	mu         sync.RWMutex
	hours      []domain.GeneralHour
	expiresAt  time.Time
	generation int64
	now        func() time.Time
}

// NewMemoryStore создает пустое хранилище в памяти
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context) ([]domain.GeneralHour, int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hours == nil || !s.now().Before(s.expiresAt) {
		return nil, s.generation, false, nil
	}
	return s.hours, s.generation, true, nil
}

// Save молча отбрасывает расписание устаревшего поколения
func (s *MemoryStore) Save(_ context.Context, generation int64, hours []domain.GeneralHour, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		return nil
	}
	s.hours = cloneHours(hours)
	s.expiresAt = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hours = nil
	s.expiresAt = time.Time{}
	s.generation++
	return nil
}
