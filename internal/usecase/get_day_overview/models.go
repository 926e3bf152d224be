package get_day_overview

import (
	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса обзора дня
type Request struct {
	Date      types.Date
	ServiceID *int64 // если задан, в ответ добавляются свободные слоты услуги
}

// Window итоговые рабочие часы дня
type Window struct {
	Open      bool
	OpenTime  *string
	CloseTime *string
	Source    availability.WindowSource
}

// Response модель ответа обзора дня
type Response struct {
	Date         types.Date
	Weekday      string
	Window       Window
	BlockedHours []domain.BlockedHour   // блокировки, действующие в этот день
	Appointments []*domain.Appointment // записи без отмененных
	ServiceID    *int64
	Slots        []string // nil, если услуга не запрошена
}
