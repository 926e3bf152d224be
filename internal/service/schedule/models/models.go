package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Request модели

// GeneralHourInput расписание одного дня недели
type GeneralHourInput struct {
	Weekday   string  `json:"weekday"`
	IsClosed  bool    `json:"isClosed"`
	OpenTime  *string `json:"openTime,omitempty"`
	CloseTime *string `json:"closeTime,omitempty"`
}

// UpdateGeneralHoursRequest замена расписания перечисленных дней недели
type UpdateGeneralHoursRequest struct {
	Days []GeneralHourInput `json:"days"`
}

// PutCustomHourRequest переопределение расписания на дату
type PutCustomHourRequest struct {
	Date      types.Date `json:"-"`
	IsClosed  bool       `json:"isClosed"`
	OpenTime  *string    `json:"openTime,omitempty"`
	CloseTime *string    `json:"closeTime,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

// CreateBlockedHourRequest создание блокировки
type CreateBlockedHourRequest struct {
	Date       string  `json:"date"` // якорная дата "2025-01-06"
	TimeFrom   string  `json:"timeFrom"`
	TimeUntil  string  `json:"timeUntil"`
	RepeatType string  `json:"repeatType,omitempty"` // none|daily|weekly|monthly
	Notes      *string `json:"notes,omitempty"`
}

// Response модели

// GeneralHourResponse расписание дня недели
type GeneralHourResponse struct {
	Weekday   string     `json:"weekday"`
	IsClosed  bool       `json:"isClosed"`
	OpenTime  *string    `json:"openTime,omitempty"`
	CloseTime *string    `json:"closeTime,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// GeneralHoursResponse расписание недели, с понедельника
type GeneralHoursResponse struct {
	Days []GeneralHourResponse `json:"days"`
}

// CustomHourResponse переопределение на дату
type CustomHourResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	IsClosed  bool      `json:"isClosed"`
	OpenTime  *string   `json:"openTime,omitempty"`
	CloseTime *string   `json:"closeTime,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomHoursListResponse список переопределений
type CustomHoursListResponse struct {
	CustomHours []CustomHourResponse `json:"customHours"`
}

// BlockedHourResponse блокировка
type BlockedHourResponse struct {
	ID         int64     `json:"id"`
	Date       string    `json:"date"`
	TimeFrom   string    `json:"timeFrom"`
	TimeUntil  string    `json:"timeUntil"`
	RepeatType string    `json:"repeatType"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BlockedHoursListResponse список блокировок
type BlockedHoursListResponse struct {
	BlockedHours []BlockedHourResponse `json:"blockedHours"`
}

// Методы конвертации

// FromDomainGeneralHours раскладывает расписание по дням недели.
// День без строки в БД отдается закрытым.
func FromDomainGeneralHours(hours []domain.GeneralHour) *GeneralHoursResponse {
	byWeekday := make(map[string]domain.GeneralHour, len(hours))
	for _, h := range hours {
		byWeekday[h.Weekday] = h
	}

	resp := &GeneralHoursResponse{Days: make([]GeneralHourResponse, 0, len(domain.Weekdays))}
	for _, weekday := range domain.Weekdays {
		h, ok := byWeekday[weekday]
		if !ok {
			resp.Days = append(resp.Days, GeneralHourResponse{Weekday: weekday, IsClosed: true})
			continue
		}

		updatedAt := h.UpdatedAt
		resp.Days = append(resp.Days, GeneralHourResponse{
			Weekday:   weekday,
			IsClosed:  h.IsClosed,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			UpdatedAt: &updatedAt,
		})
	}

	return resp
}

// FromDomainCustomHour конвертирует domain модель в DTO
func FromDomainCustomHour(h *domain.CustomHour) *CustomHourResponse {
	if h == nil {
		return nil
	}
	return &CustomHourResponse{
		ID:        h.ID,
		Date:      h.Date.String(),
		IsClosed:  h.IsClosed,
		OpenTime:  h.OpenTime,
		CloseTime: h.CloseTime,
		Notes:     h.Notes,
		UpdatedAt: h.UpdatedAt,
	}
}

// FromDomainCustomHourList конвертирует список domain моделей в DTO
func FromDomainCustomHourList(hours []domain.CustomHour) *CustomHoursListResponse {
	resp := &CustomHoursListResponse{CustomHours: make([]CustomHourResponse, 0, len(hours))}
	for i := range hours {
		resp.CustomHours = append(resp.CustomHours, *FromDomainCustomHour(&hours[i]))
	}
	return resp
}

// FromDomainBlockedHour конвертирует domain модель в DTO
func FromDomainBlockedHour(b *domain.BlockedHour) *BlockedHourResponse {
	if b == nil {
		return nil
	}
	return &BlockedHourResponse{
		ID:         b.ID,
		Date:       b.BlockedDate.String(),
		TimeFrom:   b.TimeFrom,
		TimeUntil:  b.TimeUntil,
		RepeatType: string(domain.NormalizeRepeatType(b.RepeatType)),
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainBlockedHourList конвертирует список domain моделей в DTO
func FromDomainBlockedHourList(blocks []domain.BlockedHour) *BlockedHoursListResponse {
	resp := &BlockedHoursListResponse{BlockedHours: make([]BlockedHourResponse, 0, len(blocks))}
	for i := range blocks {
		resp.BlockedHours = append(resp.BlockedHours, *FromDomainBlockedHour(&blocks[i]))
	}
	return resp
}
