package appointment

import (
	"errors"

	"github.com/lib/pq"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrSlotTaken возвращается, когда время уже занято другой записью
	// (нарушение ограничения исключения или конфликт сериализации)
	ErrSlotTaken = errors.New("appointment.repository: slot already taken")

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = errors.New("appointment.repository: appointment cannot be cancelled")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// Коды ошибок PostgreSQL, означающие занятый слот
const (
	pgUniqueViolation        = "23505"
	pgExclusionViolation     = "23P01"
	pgSerializationViolation = "40001"
)

// IsConflict возвращает true, если ошибка БД означает конкурирующую запись на то же время
func IsConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case pgUniqueViolation, pgExclusionViolation, pgSerializationViolation:
		return true
	default:
		return false
	}
}
