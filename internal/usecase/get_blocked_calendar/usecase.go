package get_blocked_calendar

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UseCase use case календаря блокировок администратора
type UseCase struct {
	blockedRepo BlockedRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(blockedRepo BlockedRepository, logger Logger) *UseCase {
	return &UseCase{
		blockedRepo: blockedRepo,
		logger:      logger,
	}
}

// Execute разворачивает повторяющиеся блокировки в даты диапазона
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBlockedCalendar: from=%s, to=%s", req.From, req.To)

	// 1. Валидация диапазона
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if days := req.From.DaysUntil(req.To) + 1; days > domain.MaxCalendarRangeDays {
		return nil, fmt.Errorf("%w: %d days, max %d", ErrRangeTooLarge, days, domain.MaxCalendarRangeDays)
	}

	// 2. Загружаем блокировки, начавшиеся не позже конца диапазона
	blocks, err := uc.blockedRepo.ListUntil(ctx, req.To)
	if err != nil {
		uc.logger.Error("GetBlockedCalendar: failed to list blocked hours: %v", err)
		return nil, fmt.Errorf("%w: failed to list blocked hours: %v", ErrInternal, err)
	}

	// 3. Разворачиваем каждую блокировку
	occurrences := make([]Occurrence, 0)
	for _, block := range blocks {
		dates, err := availability.Occurrences(block, req.From, req.To)
		if err != nil {
			uc.logger.Warn("GetBlockedCalendar: skip block id=%d: %v", block.ID, err)
			continue
		}
		for _, date := range dates {
			occurrences = append(occurrences, Occurrence{
				Date:      date,
				BlockID:   block.ID,
				TimeFrom:  block.TimeFrom,
				TimeUntil: block.TimeUntil,
				Repeat:    domain.NormalizeRepeatType(block.RepeatType),
				Notes:     block.Notes,
			})
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		if c := occurrences[i].Date.Compare(occurrences[j].Date); c != 0 {
			return c < 0
		}
		if occurrences[i].TimeFrom != occurrences[j].TimeFrom {
			return occurrences[i].TimeFrom < occurrences[j].TimeFrom
		}
		return occurrences[i].BlockID < occurrences[j].BlockID
	})

	uc.logger.Info("GetBlockedCalendar: %d occurrences from %d blocks", len(occurrences), len(blocks))

	return &Response{
		From:        req.From,
		To:          req.To,
		Occurrences: occurrences,
	}, nil
}
