package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// AppointmentStatuses все допустимые статусы
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	for _, st := range AppointmentStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// Appointment represents a booked salon appointment.
// DurationMinutes and BufferMinutes are copied from the service at booking
// time, so later service edits do not move existing occupancy.
type Appointment struct {
	ID              int64
	ServiceID       int64
	ServiceName     string
	ClientName      string
	ClientPhone     string
	ClientEmail     *string
	Date            types.Date
	StartTime       types.TimeString
	DurationMinutes int
	BufferMinutes   int
	Status          AppointmentStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesTime returns true if the appointment blocks its time range.
// Only cancelled appointments free their slot.
func (a *Appointment) OccupiesTime() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// BookedInterval returns the engine view of the appointment
func (a *Appointment) BookedInterval() BookedInterval {
	return BookedInterval{
		Time:            a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		BufferMinutes:   a.BufferMinutes,
	}
}

// BookedInterval existing appointment as consumed by the availability engine:
// start time plus the timing of the service actually booked.
type BookedInterval struct {
	Time            string
	DurationMinutes int
	BufferMinutes   int
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	StartDate        *types.Date // включительно
	EndDate          *types.Date // включительно
	ServiceID        *int64
	Status           *AppointmentStatus
	IncludeCancelled bool
}
