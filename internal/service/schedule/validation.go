package schedule

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// normalizeTime приводит "HH:MM[:SS]" к "HH:MM", nil и пустая строка дают nil
func normalizeTime(field string, value *string) (*string, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, field, err)
	}
	return ptr.Ptr(ts.String()), nil
}

// validateRange проверяет open < closing, если заданы оба значения
func validateRange(open, closing *string) error {
	if open == nil || closing == nil {
		return nil
	}
	if !types.TimeString(*open).IsBefore(types.TimeString(*closing)) {
		return fmt.Errorf("%w: %s must be before %s", ErrInvalidTimeRange, *open, *closing)
	}
	return nil
}

// toGeneralHour валидирует расписание дня недели.
// Открытый день требует оба времени, у закрытого они сбрасываются.
func toGeneralHour(in models.GeneralHourInput) (*domain.GeneralHour, error) {
	if !domain.IsValidWeekday(in.Weekday) {
		return nil, fmt.Errorf("%w: unknown weekday %q", ErrInvalidInput, in.Weekday)
	}

	hour := &domain.GeneralHour{Weekday: in.Weekday, IsClosed: in.IsClosed}
	if in.IsClosed {
		return hour, nil
	}

	open, err := normalizeTime("openTime", in.OpenTime)
	if err != nil {
		return nil, err
	}
	closing, err := normalizeTime("closeTime", in.CloseTime)
	if err != nil {
		return nil, err
	}
	if open == nil || closing == nil {
		return nil, fmt.Errorf("%w: %s: open and close times are required for an open day", ErrInvalidInput, in.Weekday)
	}
	if err := validateRange(open, closing); err != nil {
		return nil, err
	}

	hour.OpenTime = open
	hour.CloseTime = closing
	return hour, nil
}

// toCustomHour валидирует переопределение на дату.
// Открытое переопределение может задавать только одно из времен,
// недостающее берется из расписания дня недели.
func toCustomHour(req *models.PutCustomHourRequest) (*domain.CustomHour, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	hour := &domain.CustomHour{
		Date:     req.Date,
		Type:     domain.CustomHourTypeDay,
		IsClosed: req.IsClosed,
		Notes:    req.Notes,
	}
	if req.IsClosed {
		return hour, nil
	}

	open, err := normalizeTime("openTime", req.OpenTime)
	if err != nil {
		return nil, err
	}
	closing, err := normalizeTime("closeTime", req.CloseTime)
	if err != nil {
		return nil, err
	}
	if err := validateRange(open, closing); err != nil {
		return nil, err
	}

	hour.OpenTime = open
	hour.CloseTime = closing
	return hour, nil
}

// toBlockedHour валидирует блокировку
func toBlockedHour(req *models.CreateBlockedHourRequest) (*domain.BlockedHour, error) {
	date, err := types.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date: %v", ErrInvalidInput, err)
	}

	from, err := normalizeTime("timeFrom", &req.TimeFrom)
	if err != nil {
		return nil, err
	}
	until, err := normalizeTime("timeUntil", &req.TimeUntil)
	if err != nil {
		return nil, err
	}
	if from == nil || until == nil {
		return nil, fmt.Errorf("%w: timeFrom and timeUntil are required", ErrInvalidInput)
	}
	if err := validateRange(from, until); err != nil {
		return nil, err
	}

	repeat := domain.RepeatType(req.RepeatType)
	if repeat == "" {
		repeat = domain.RepeatNone
	}
	if !repeat.IsValid() {
		return nil, fmt.Errorf("%w: unknown repeat type %q", ErrInvalidInput, req.RepeatType)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	return &domain.BlockedHour{
		BlockedDate: date,
		TimeFrom:    *from,
		TimeUntil:   *until,
		RepeatType:  repeat,
		Notes:       req.Notes,
	}, nil
}
