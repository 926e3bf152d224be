package list_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	err error
	got *models.ListAppointmentsRequest
}

func (f *fakeService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandleDateFilter(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments?date=2024-05-06&serviceId=3&status=pending&includeCancelled=true", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "2024-05-06", svc.got.StartDate.String())
	assert.Equal(t, "2024-05-06", svc.got.EndDate.String())
	assert.Equal(t, int64(3), *svc.got.ServiceID)
	assert.Equal(t, "pending", *svc.got.Status)
	assert.True(t, svc.got.IncludeCancelled)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
		wantCall   bool
	}{
		{name: "date with range", query: "?date=2024-05-06&from=2024-05-01", wantStatus: http.StatusBadRequest},
		{name: "bad service id", query: "?serviceId=abc", wantStatus: http.StatusBadRequest},
		{name: "bad flag", query: "?includeCancelled=maybe", wantStatus: http.StatusBadRequest},
		{name: "bad status", query: "?status=lost", err: appointments.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantCall: true},
		{name: "internal", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError, wantCall: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/appointments"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCall, svc.got != nil)
		})
	}
}
