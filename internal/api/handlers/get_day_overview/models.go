package get_day_overview

import (
	appointmentModels "github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	scheduleModels "github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
	getDayOverview "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_day_overview"
)

// WindowResponse рабочие часы дня
type WindowResponse struct {
	IsOpen    bool    `json:"isOpen"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
	Source    string  `json:"source"` // custom|general|default
}

// DayOverviewResponse обзор дня для администратора
type DayOverviewResponse struct {
	Date         string                                  `json:"date"`
	Weekday      string                                  `json:"weekday"`
	Window       WindowResponse                          `json:"window"`
	BlockedHours []scheduleModels.BlockedHourResponse    `json:"blockedHours"`
	Appointments []appointmentModels.AppointmentResponse `json:"appointments"`
	ServiceID    *int64                                  `json:"serviceId,omitempty"`
	Slots        []string                                `json:"slots,omitempty"`
}

func FromUseCaseResponse(resp *getDayOverview.Response) *DayOverviewResponse {
	result := &DayOverviewResponse{
		Date:    resp.Date.String(),
		Weekday: resp.Weekday,
		Window: WindowResponse{
			IsOpen:    resp.Window.Open,
			OpenTime:  resp.Window.OpenTime,
			CloseTime: resp.Window.CloseTime,
			Source:    string(resp.Window.Source),
		},
		BlockedHours: scheduleModels.FromDomainBlockedHourList(resp.BlockedHours).BlockedHours,
		Appointments: appointmentModels.FromDomainAppointmentList(resp.Appointments).Appointments,
		ServiceID:    resp.ServiceID,
	}

	if resp.ServiceID != nil {
		// Пустой список слотов отдаем явно
		result.Slots = resp.Slots
		if result.Slots == nil {
			result.Slots = []string{}
		}
	}

	return result
}
