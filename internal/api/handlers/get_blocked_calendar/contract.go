package get_blocked_calendar

import (
	"context"

	getBlockedCalendar "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_blocked_calendar"
)

type BlockedCalendarUseCase interface {
	Execute(ctx context.Context, req *getBlockedCalendar.Request) (*getBlockedCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
