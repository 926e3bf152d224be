package availability

import (
	"time"

	"github.com/teambition/rrule-go"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// IsActiveOn проверяет, действует ли блокировка в указанную дату.
// Правило никогда не применяется к датам раньше якорной.
// Неизвестный тип повтора трактуется как "none".
func IsActiveOn(block domain.BlockedHour, date types.Date) bool {
	anchor := block.BlockedDate
	if date.Before(anchor) {
		return false
	}

	switch domain.NormalizeRepeatType(block.RepeatType) {
	case domain.RepeatDaily:
		return true
	case domain.RepeatWeekly:
		return anchor.Weekday() == date.Weekday()
	case domain.RepeatMonthly:
		// 31-е число не совпадает ни с одним днем 30-дневного месяца
		return anchor.Day == date.Day
	default:
		return anchor.Equal(date)
	}
}

// ActiveBlocks возвращает блокировки, действующие в указанную дату
func ActiveBlocks(blocks []domain.BlockedHour, date types.Date) []domain.BlockedHour {
	active := make([]domain.BlockedHour, 0, len(blocks))
	for _, b := range blocks {
		if IsActiveOn(b, date) {
			active = append(active, b)
		}
	}
	return active
}

// Occurrences разворачивает блокировку в список дат в диапазоне [from, to].
// Используется календарем администратора; результат совпадает с IsActiveOn
// для каждой даты диапазона.
func Occurrences(block domain.BlockedHour, from, to types.Date) ([]types.Date, error) {
	if to.Before(from) || to.Before(block.BlockedDate) {
		return []types.Date{}, nil
	}

	repeat := domain.NormalizeRepeatType(block.RepeatType)
	if repeat == domain.RepeatNone {
		if block.BlockedDate.Before(from) {
			return []types.Date{}, nil
		}
		return []types.Date{block.BlockedDate}, nil
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    frequency(repeat),
		Dtstart: block.BlockedDate.Time(time.UTC),
	})
	if err != nil {
		return nil, err
	}

	// Кандидаты считаются полночью UTC, переходов на летнее время нет
	occurrences := rule.Between(from.Time(time.UTC), to.Time(time.UTC), true)
	dates := make([]types.Date, 0, len(occurrences))
	for _, o := range occurrences {
		dates = append(dates, types.DateOf(o.UTC()))
	}
	return dates, nil
}

func frequency(repeat domain.RepeatType) rrule.Frequency {
	switch repeat {
	case domain.RepeatWeekly:
		return rrule.WEEKLY
	case domain.RepeatMonthly:
		return rrule.MONTHLY
	default:
		return rrule.DAILY
	}
}
