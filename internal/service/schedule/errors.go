package schedule

import "errors"

var (
	// ErrCustomHourNotFound возвращается, когда переопределение на дату не найдено
	ErrCustomHourNotFound = errors.New("custom hour not found")

	// ErrBlockedHourNotFound возвращается, когда блокировка не найдена
	ErrBlockedHourNotFound = errors.New("blocked hour not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше времени окончания
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
