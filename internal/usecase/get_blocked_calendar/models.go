package get_blocked_calendar

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса календаря блокировок, диапазон включительный
type Request struct {
	From types.Date
	To   types.Date
}

// Occurrence одно срабатывание блокировки в конкретную дату
type Occurrence struct {
	Date      types.Date
	BlockID   int64
	TimeFrom  string
	TimeUntil string
	Repeat    domain.RepeatType
	Notes     *string
}

// Response модель ответа, срабатывания упорядочены по дате и времени начала
type Response struct {
	From        types.Date
	To          types.Date
	Occurrences []Occurrence
}
