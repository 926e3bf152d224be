package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID   int64            // ID услуги
	Date        types.Date       // Дата записи
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	ClientName  string           // Имя клиента
	ClientPhone string           // Телефон клиента
	ClientEmail *string          // Email клиента (опционально)
	Notes       *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ServiceID       int64            // ID услуги
	ServiceName     string           // Название услуги
	Date            types.Date       // Дата записи
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания услуги (без буфера)
	DurationMinutes int              // Длительность в минутах
	BufferMinutes   int              // Буфер после услуги
	Status          string           // Статус записи

	ClientName  string
	ClientPhone string
	ClientEmail *string
	Notes       *string

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
