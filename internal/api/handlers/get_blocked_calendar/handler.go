package get_blocked_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getBlockedCalendar "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_blocked_calendar"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingRange  = "параметры from и to обязательны"
	msgRangeTooLarge = "диапазон дат слишком большой"
)

type Handler struct {
	useCase BlockedCalendarUseCase
	logger  Logger
}

func NewHandler(useCase BlockedCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/blocked-hours/calendar?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /admin/blocked-hours/calendar - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		h.logger.Warn("GET /admin/blocked-hours/calendar - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if from == nil || to == nil {
		h.logger.Warn("GET /admin/blocked-hours/calendar - Missing range")
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBlockedCalendar.Request{From: *from, To: *to})
	if err != nil {
		switch {
		case errors.Is(err, getBlockedCalendar.ErrRangeTooLarge):
			h.logger.Warn("GET /admin/blocked-hours/calendar - Range too large: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, getBlockedCalendar.ErrInvalidInput):
			h.logger.Warn("GET /admin/blocked-hours/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/blocked-hours/calendar - Failed to build calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/blocked-hours/calendar - Calendar built successfully: from=%s, to=%s, occurrences=%d",
		from, to, len(result.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
