package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// CustomHourTypeDay override type for a single calendar date
const CustomHourTypeDay = "day"

// GeneralHour default opening hours for one weekday
type GeneralHour struct {
	ID        int64
	Weekday   string  // lowercase English weekday name, e.g. "monday"
	IsClosed  bool
	OpenTime  *string // NULL when closed
	CloseTime *string // NULL when closed
	UpdatedAt time.Time
}

// CustomHour opening hours override for one calendar date.
// Takes priority over GeneralHour for that date.
type CustomHour struct {
	ID        int64
	Date      types.Date
	Type      string
	IsClosed  bool
	OpenTime  *string
	CloseTime *string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDayOverride returns true for overrides of type "day"
func (c *CustomHour) IsDayOverride() bool {
	return c.Type == "" || c.Type == CustomHourTypeDay
}

// Weekdays все дни недели в порядке с понедельника
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WeekdayName возвращает имя дня недели даты в нижнем регистре
func WeekdayName(date types.Date) string {
	return strings.ToLower(date.Weekday().String())
}

// IsValidWeekday проверяет имя дня недели
func IsValidWeekday(name string) bool {
	for _, w := range Weekdays {
		if w == name {
			return true
		}
	}
	return false
}
