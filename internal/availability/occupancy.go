package availability

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Range forbidden half-open interval [Start, End) in minutes from midnight
type Range struct {
	Start int
	End   int
}

// ForbiddenRanges собирает запрещенные интервалы дня: активные блокировки как есть
// и записи как [time, time+duration+buffer) по таймингу их собственной услуги.
// Элементы с некорректным временем пропускаются.
func ForbiddenRanges(activeBlocks []domain.BlockedHour, appointments []domain.BookedInterval) []Range {
	ranges := make([]Range, 0, len(activeBlocks)+len(appointments))

	for _, b := range activeBlocks {
		if r, ok := blockRange(b); ok {
			ranges = append(ranges, r)
		}
	}

	for _, a := range appointments {
		start, ok := ToMinutes(&a.Time)
		if !ok {
			continue
		}
		span := a.DurationMinutes + a.BufferMinutes
		if span <= 0 {
			continue
		}
		ranges = append(ranges, Range{Start: start, End: start + span})
	}

	return ranges
}

// MalformedBlocks возвращает блокировки с неразбираемым или пустым интервалом,
// которые ForbiddenRanges пропускает. Вызывающий код сообщает о них в лог.
func MalformedBlocks(blocks []domain.BlockedHour) []domain.BlockedHour {
	var malformed []domain.BlockedHour
	for _, b := range blocks {
		if _, ok := blockRange(b); !ok {
			malformed = append(malformed, b)
		}
	}
	return malformed
}

func blockRange(b domain.BlockedHour) (Range, bool) {
	from, okFrom := ToMinutes(&b.TimeFrom)
	until, okUntil := ToMinutes(&b.TimeUntil)
	if !okFrom || !okUntil || from >= until {
		return Range{}, false
	}
	return Range{Start: from, End: until}, true
}

func overlapsAny(start, end int, ranges []Range) bool {
	for _, r := range ranges {
		if Overlaps(start, end, r.Start, r.End) {
			return true
		}
	}
	return false
}
