package list_blocked_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
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

// Handle GET /api/v1/admin/blocked-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBlockedHours(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/blocked-hours - Failed to list blocked hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/blocked-hours - Blocked hours retrieved successfully: count=%d", len(result.BlockedHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
