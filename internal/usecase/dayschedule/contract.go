package dayschedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	hoursCache "github.com/m04kA/SMC-SalonBooking/internal/infra/cache/hours"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	ListGeneral(ctx context.Context) ([]domain.GeneralHour, error)
	ListCustom(ctx context.Context, from, to *types.Date) ([]domain.CustomHour, error)
}

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	// ListUntil возвращает все блокировки с якорной датой <= date
	ListUntil(ctx context.Context, date types.Date) ([]domain.BlockedHour, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListByDate внутри транзакции блокирует строки (FOR UPDATE)
	ListByDate(ctx context.Context, date types.Date, includeCancelled bool) ([]*domain.Appointment, error)
}

// HoursCache кэш общих рабочих часов
type HoursCache interface {
	Get(ctx context.Context, load hoursCache.Loader) ([]domain.GeneralHour, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
