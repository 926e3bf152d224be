package list_custom_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type ScheduleService interface {
	ListCustomHours(ctx context.Context, from, to *types.Date) (*models.CustomHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
