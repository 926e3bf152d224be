package domain

// Availability engine constants
const (
	// SlotStepMinutes шаг сетки слотов
	SlotStepMinutes = 30
)

// Default configuration values
const (
	DefaultMinBookingNoticeMinutes = 60 // 1 hour
	DefaultAdvanceBookingDays      = 0  // 0 = unlimited
)

// Business validation constants
const (
	MinServiceDurationMinutes   = 5
	MaxServiceDurationMinutes   = 480 // 8 hours
	MinServiceBufferMinutes     = 0
	MaxServiceBufferMinutes     = 240
	MaxServiceNameLength        = 200
	MaxNotesLength              = 500
	MaxClientNameLength         = 200
	MaxCancellationReasonLength = 500
	MaxCalendarRangeDays        = 62
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
