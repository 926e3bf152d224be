package get_general_hours

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

// Handle GET /api/v1/admin/general-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetGeneralHours(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/general-hours - Failed to get general hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/general-hours - General hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
