package domain

import "time"

// Service salon service offered for booking
type Service struct {
	ID              int64
	Name            string
	Description     *string
	DurationMinutes int
	BufferMinutes   int // trailing gap after the service
	Price           float64
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ServiceProfile timing of a service used by the availability engine
type ServiceProfile struct {
	DurationMinutes int
	BufferMinutes   int
}

// TotalMinutes duration plus buffer
func (p ServiceProfile) TotalMinutes() int {
	return p.DurationMinutes + p.BufferMinutes
}

// Profile returns the timing profile of the service
func (s *Service) Profile() ServiceProfile {
	return ServiceProfile{
		DurationMinutes: s.DurationMinutes,
		BufferMinutes:   s.BufferMinutes,
	}
}
