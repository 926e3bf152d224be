package delete_blocked_hour

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule"
)

const (
	msgInvalidID = "некорректный ID блокировки"
	msgNotFound  = "блокировка не найдена"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-hours/{blockedHourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "blockedHourId")
	if err != nil {
		h.logger.Warn("DELETE /admin/blocked-hours/{id} - Invalid ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteBlockedHour(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, schedule.ErrBlockedHourNotFound):
			h.logger.Warn("DELETE /admin/blocked-hours/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-hours/{id} - Failed to delete blocked hour: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocked-hours/{id} - Blocked hour deleted successfully: id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
