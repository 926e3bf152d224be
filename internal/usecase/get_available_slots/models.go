package get_available_slots

import "github.com/m04kA/SMC-SalonBooking/pkg/types"

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64      // ID услуги
	Date      types.Date // Дата для получения слотов
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      types.Date // Дата, на которую запрашивались слоты
	ServiceID int64      // ID услуги
	Slots     []string   // Время начала свободных слотов "HH:MM" по возрастанию
}
