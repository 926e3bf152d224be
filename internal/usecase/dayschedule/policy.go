package dayschedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Policy правила записи: часовой пояс салона, минимальное время до записи
// и горизонт записи. Все "сегодня" считаются в часовом поясе салона.
type Policy struct {
	location           *time.Location
	minNoticeMinutes   int
	advanceBookingDays int
	timeProvider       TimeProvider
}

// NewPolicy создает правила записи. advanceBookingDays = 0 означает без ограничения.
func NewPolicy(location *time.Location, minNoticeMinutes, advanceBookingDays int) *Policy {
	if location == nil {
		location = time.UTC
	}
	return &Policy{
		location:           location,
		minNoticeMinutes:   minNoticeMinutes,
		advanceBookingDays: advanceBookingDays,
		timeProvider:       &RealTimeProvider{},
	}
}

// WithTimeProvider подменяет источник времени (для тестов)
func (p *Policy) WithTimeProvider(tp TimeProvider) *Policy {
	p.timeProvider = tp
	return p
}

func (p *Policy) now() time.Time {
	return p.timeProvider.Now().In(p.location)
}

// Today возвращает текущую дату салона
func (p *Policy) Today() types.Date {
	return types.DateOf(p.now())
}

// CheckDate проверяет, что на дату можно записаться
func (p *Policy) CheckDate(date types.Date) error {
	today := p.Today()
	if date.Before(today) {
		return ErrDateInPast
	}
	if p.advanceBookingDays > 0 && today.DaysUntil(date) > p.advanceBookingDays {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, p.advanceBookingDays)
	}
	return nil
}

// EarliestStart возвращает минимальное время начала в минутах на дату.
// Для будущих дат ограничения нет (0).
func (p *Policy) EarliestStart(date types.Date) int {
	now := p.now()
	if !types.DateOf(now).Equal(date) {
		return 0
	}
	return now.Hour()*60 + now.Minute() + p.minNoticeMinutes
}

// MinNoticeMinutes минимальное время до записи
func (p *Policy) MinNoticeMinutes() int {
	return p.minNoticeMinutes
}

// FilterNotice убирает слоты, начинающиеся раньше EarliestStart
func (p *Policy) FilterNotice(date types.Date, slots []string) []string {
	earliest := p.EarliestStart(date)
	if earliest == 0 {
		return slots
	}
	result := make([]string, 0, len(slots))
	for _, slot := range slots {
		start, ok := availability.ToMinutes(&slot)
		if ok && start >= earliest {
			result = append(result, slot)
		}
	}
	return result
}
