package list_appointments

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
)

const (
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidServiceID = "некорректный ID услуги"
	msgInvalidFlag      = "некорректное значение includeCancelled"
	msgDateWithRange    = "параметр date нельзя сочетать с from/to"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: date | from, to; serviceId, status, includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, msg, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msg)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseRequest(r *http.Request) (*models.ListAppointmentsRequest, string, error) {
	date, err := handlers.QueryDate(r, "date")
	if err != nil {
		return nil, msgInvalidDate, err
	}
	from, err := handlers.QueryDate(r, "from")
	if err != nil {
		return nil, msgInvalidDate, err
	}
	to, err := handlers.QueryDate(r, "to")
	if err != nil {
		return nil, msgInvalidDate, err
	}
	if date != nil && (from != nil || to != nil) {
		return nil, msgDateWithRange, handlers.ErrInvalidParam
	}
	if date != nil {
		from, to = date, date
	}

	serviceID, err := handlers.QueryInt64(r, "serviceId")
	if err != nil {
		return nil, msgInvalidServiceID, err
	}
	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		return nil, msgInvalidFlag, err
	}

	req := &models.ListAppointmentsRequest{
		StartDate:        from,
		EndDate:          to,
		ServiceID:        serviceID,
		IncludeCancelled: includeCancelled,
	}
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		req.Status = &status
	}
	return req, "", nil
}
