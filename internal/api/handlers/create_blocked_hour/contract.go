package create_blocked_hour

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBlockedHour(ctx context.Context, req *models.CreateBlockedHourRequest) (*models.BlockedHourResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
