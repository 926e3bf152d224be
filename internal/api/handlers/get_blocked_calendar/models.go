package get_blocked_calendar

import (
	getBlockedCalendar "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_blocked_calendar"
)

// OccurrenceResponse срабатывание блокировки в конкретную дату
type OccurrenceResponse struct {
	Date       string  `json:"date"`
	BlockID    int64   `json:"blockedHourId"`
	TimeFrom   string  `json:"timeFrom"`
	TimeUntil  string  `json:"timeUntil"`
	RepeatType string  `json:"repeatType"`
	Notes      *string `json:"notes,omitempty"`
}

// CalendarResponse ответ календаря блокировок
type CalendarResponse struct {
	From        string               `json:"from"`
	To          string               `json:"to"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

func FromUseCaseResponse(resp *getBlockedCalendar.Response) *CalendarResponse {
	occurrences := make([]OccurrenceResponse, 0, len(resp.Occurrences))
	for _, o := range resp.Occurrences {
		occurrences = append(occurrences, OccurrenceResponse{
			Date:       o.Date.String(),
			BlockID:    o.BlockID,
			TimeFrom:   o.TimeFrom,
			TimeUntil:  o.TimeUntil,
			RepeatType: string(o.Repeat),
			Notes:      o.Notes,
		})
	}

	return &CalendarResponse{
		From:        resp.From.String(),
		To:          resp.To.String(),
		Occurrences: occurrences,
	}
}
