package create_booking

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

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// Create создает запись, пересечение по времени возвращает ErrSlotTaken
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// ScheduleLoader загружает снимок расписания на дату.
// Внутри транзакции записи на дату блокируются.
type ScheduleLoader interface {
	Load(ctx context.Context, date types.Date) (*dayschedule.Snapshot, error)
}

// BookingPolicy правила записи
type BookingPolicy interface {
	CheckDate(date types.Date) error
	EarliestStart(date types.Date) int
	MinNoticeMinutes() int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики отклоненных записей
type Metrics interface {
	ObserveBookingConflict(reason string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
