package get_available_slots

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/dayschedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// ScheduleLoader загружает снимок расписания на дату
type ScheduleLoader interface {
	Load(ctx context.Context, date types.Date) (*dayschedule.Snapshot, error)
}

// BookingPolicy правила записи
type BookingPolicy interface {
	CheckDate(date types.Date) error
	FilterNotice(date types.Date, slots []string) []string
}

// Metrics метрики расчета слотов
type Metrics interface {
	ObserveSlots(slotsCount int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
