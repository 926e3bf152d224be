package availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// WindowSource источник, определивший окно работы на дату
type WindowSource string

const (
	SourceCustom  WindowSource = "custom"
	SourceGeneral WindowSource = "general"
	SourceDefault WindowSource = "default"
)

// Window effective opening window of a day, [OpenMinutes, CloseMinutes)
type Window struct {
	Open         bool
	OpenMinutes  int
	CloseMinutes int
	Source       WindowSource
}

func closedWindow(source WindowSource) Window {
	return Window{Open: false, Source: source}
}

// ResolveWindow определяет окно работы на дату.
// Приоритет: переопределение на дату > расписание дня недели > закрыто.
//
// Переопределение с is_closed=false, в котором не задано время открытия или
// закрытия, наследует недостающее поле из расписания дня недели. Если время
// и после этого не определено или некорректно, день считается закрытым.
func ResolveWindow(date types.Date, generalHours []domain.GeneralHour, customHours []domain.CustomHour) Window {
	general := findGeneralHour(generalHours, domain.WeekdayName(date))

	if custom := findCustomHour(customHours, date); custom != nil {
		if custom.IsClosed {
			return closedWindow(SourceCustom)
		}

		openTime, closeTime := custom.OpenTime, custom.CloseTime
		if general != nil {
			if _, ok := ToMinutes(openTime); !ok {
				openTime = general.OpenTime
			}
			if _, ok := ToMinutes(closeTime); !ok {
				closeTime = general.CloseTime
			}
		}
		return buildWindow(openTime, closeTime, SourceCustom)
	}

	if general == nil {
		return closedWindow(SourceDefault)
	}
	if general.IsClosed {
		return closedWindow(SourceGeneral)
	}
	return buildWindow(general.OpenTime, general.CloseTime, SourceGeneral)
}

func buildWindow(openTime, closeTime *string, source WindowSource) Window {
	open, okOpen := ToMinutes(openTime)
	closing, okClose := ToMinutes(closeTime)
	if !okOpen || !okClose || open >= closing {
		return closedWindow(source)
	}
	return Window{
		Open:         true,
		OpenMinutes:  open,
		CloseMinutes: closing,
		Source:       source,
	}
}

func findGeneralHour(hours []domain.GeneralHour, weekday string) *domain.GeneralHour {
	for i := range hours {
		if hours[i].Weekday == weekday {
			return &hours[i]
		}
	}
	return nil
}

func findCustomHour(hours []domain.CustomHour, date types.Date) *domain.CustomHour {
	for i := range hours {
		if hours[i].IsDayOverride() && hours[i].Date.Equal(date) {
			return &hours[i]
		}
	}
	return nil
}
