package get_day_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	getDayOverview "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_day_overview"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServiceID = "некорректный ID услуги"
	msgServiceNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase DayOverviewUseCase
	logger  Logger
}

func NewHandler(useCase DayOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/days/{date}
// Query params: serviceId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.PathDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /admin/days/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil {
		h.logger.Warn("GET /admin/days/{date} - Invalid serviceId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayOverview.Request{Date: date, ServiceID: serviceID})
	if err != nil {
		switch {
		case errors.Is(err, getDayOverview.ErrServiceNotFound):
			h.logger.Warn("GET /admin/days/{date} - Service not found: date=%s", date)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getDayOverview.ErrInvalidInput):
			h.logger.Warn("GET /admin/days/{date} - Invalid input: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/days/{date} - Failed to build day overview: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/days/{date} - Day overview built successfully: date=%s, open=%t, appointments=%d",
		date, result.Window.Open, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
