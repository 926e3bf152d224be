package delete_custom_hour

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type ScheduleService interface {
	DeleteCustomHour(ctx context.Context, date types.Date) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
