package hours

import "errors"

var (
	// ErrLoad ошибка загрузки расписания из источника
	ErrLoad = errors.New("hours.cache: failed to load general hours")

	// ErrInvalidate ошибка сброса кеша
	ErrInvalidate = errors.New("hours.cache: failed to invalidate")
)
