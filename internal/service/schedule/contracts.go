package schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// HoursRepository интерфейс репозитория расписания
type HoursRepository interface {
	ListGeneral(ctx context.Context) ([]domain.GeneralHour, error)
	UpsertGeneral(ctx context.Context, hour *domain.GeneralHour) (*domain.GeneralHour, error)
	ListCustom(ctx context.Context, from, to *types.Date) ([]domain.CustomHour, error)
	UpsertCustom(ctx context.Context, hour *domain.CustomHour) (*domain.CustomHour, error)
	DeleteCustom(ctx context.Context, date types.Date) error
}

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	ListAll(ctx context.Context) ([]domain.BlockedHour, error)
	Create(ctx context.Context, block *domain.BlockedHour) (*domain.BlockedHour, error)
	Delete(ctx context.Context, id int64) error
}

// HoursCache кеш расписания дней недели
type HoursCache interface {
	Invalidate(ctx context.Context) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
