package availability

import "errors"

var (
	// ErrInvalidService возвращается при некорректном тайминге услуги
	ErrInvalidService = errors.New("availability: invalid service profile")

	// ErrInvalidDate возвращается, когда дата не задана
	ErrInvalidDate = errors.New("availability: date is required")
)
