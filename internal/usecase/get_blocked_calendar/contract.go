package get_blocked_calendar

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// BlockedRepository интерфейс репозитория блокировок
type BlockedRepository interface {
	ListUntil(ctx context.Context, date types.Date) ([]domain.BlockedHour, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
