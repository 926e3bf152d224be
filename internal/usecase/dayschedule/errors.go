package dayschedule

import "errors"

var (
	// ErrDateInPast возвращается для даты раньше сегодняшней
	ErrDateInPast = errors.New("dayschedule: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата за горизонтом записи
	ErrDateTooFarInFuture = errors.New("dayschedule: date is too far in the future")

	// ErrLoad возвращается при ошибке чтения данных расписания
	ErrLoad = errors.New("dayschedule: failed to load schedule")
)
