package availability

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Input snapshot of everything needed to compute bookable slots for one date.
// BlockedHours must be the full catalogue with anchors up to Date, not only
// the blocks of that date, so recurrence can be expanded here.
// Appointments must exclude cancelled ones.
type Input struct {
	Date         types.Date
	Service      domain.ServiceProfile
	GeneralHours []domain.GeneralHour
	CustomHours  []domain.CustomHour
	BlockedHours []domain.BlockedHour
	Appointments []domain.BookedInterval
}

// ValidateService проверяет тайминг услуги
func ValidateService(p domain.ServiceProfile) error {
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidService)
	}
	if p.BufferMinutes < 0 {
		return fmt.Errorf("%w: buffer must not be negative", ErrInvalidService)
	}
	if p.TotalMinutes() >= types.MinutesPerDay {
		return fmt.Errorf("%w: duration with buffer exceeds a day", ErrInvalidService)
	}
	return nil
}

// Compute вычисляет доступные слоты и сообщает о некорректном входе.
// Отсутствие слотов ошибкой не является.
func Compute(in Input) ([]string, error) {
	if in.Date.IsZero() {
		return []string{}, ErrInvalidDate
	}
	if err := ValidateService(in.Service); err != nil {
		return []string{}, err
	}

	window := ResolveWindow(in.Date, in.GeneralHours, in.CustomHours)
	if !window.Open {
		return []string{}, nil
	}

	active := ActiveBlocks(in.BlockedHours, in.Date)
	forbidden := ForbiddenRanges(active, in.Appointments)

	return GenerateSlots(window, forbidden, in.Service.TotalMinutes()), nil
}

// ComputeAvailableSlots возвращает упорядоченный список "HH:MM", на которые
// можно записаться. Некорректный вход дает пустой список.
func ComputeAvailableSlots(in Input) []string {
	slots, err := Compute(in)
	if err != nil {
		return []string{}
	}
	return slots
}

// IsSlotAvailable проверяет, входит ли start в список доступных слотов
func IsSlotAvailable(slots []string, start string) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
