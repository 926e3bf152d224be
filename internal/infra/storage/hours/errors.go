package hours

import "errors"

var (
	// ErrGeneralHourNotFound возвращается, когда расписание дня недели не найдено
	ErrGeneralHourNotFound = errors.New("hours.repository: general hour not found")

	// ErrCustomHourNotFound возвращается, когда переопределение на дату не найдено
	ErrCustomHourNotFound = errors.New("hours.repository: custom hour not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hours.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hours.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hours.repository: failed to scan row")
)
