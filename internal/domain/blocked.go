package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// RepeatType recurrence rule of a blocked interval
type RepeatType string

const (
	RepeatNone    RepeatType = "none"
	RepeatDaily   RepeatType = "daily"
	RepeatWeekly  RepeatType = "weekly"
	RepeatMonthly RepeatType = "monthly"
)

// IsValid returns true for a known repeat type
func (r RepeatType) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	default:
		return false
	}
}

// NormalizeRepeatType maps unknown or empty values to RepeatNone
func NormalizeRepeatType(r RepeatType) RepeatType {
	if r.IsValid() {
		return r
	}
	return RepeatNone
}

// BlockedHour unavailable interval [TimeFrom, TimeUntil) anchored on BlockedDate.
// For recurring blocks BlockedDate is the first date the rule applies to.
type BlockedHour struct {
	ID          int64
	BlockedDate types.Date
	TimeFrom    string
	TimeUntil   string
	RepeatType  RepeatType
	Notes       *string
	CreatedAt   time.Time
}

// IsRecurring returns true if the block repeats after its anchor date
func (b *BlockedHour) IsRecurring() bool {
	rt := NormalizeRepeatType(b.RepeatType)
	return rt != RepeatNone
}
