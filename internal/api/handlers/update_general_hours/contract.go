package update_general_hours

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateGeneralHours(ctx context.Context, req *models.UpdateGeneralHoursRequest) (*models.GeneralHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
