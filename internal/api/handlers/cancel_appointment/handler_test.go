package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeService struct {
	err    error
	calls  int
	id     int64
	reason *string
}

func (f *fakeService) Cancel(_ context.Context, id int64, req *models.CancelAppointmentRequest) error {
	f.calls++
	f.id = id
	f.reason = req.Reason
	return f.err
}

func newRequest(id, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+id+"/cancel", nil)
	} else {
		r = httptest.NewRequest(http.MethodPatch, "/api/v1/admin/appointments/"+id+"/cancel", strings.NewReader(body))
	}
	return mux.SetURLVars(r, map[string]string{"appointmentId": id})
}

func TestHandle(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		svc := &fakeService{}
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, newRequest("42", `{"reason":"клиент заболел"}`))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(42), svc.id)
		require.NotNil(t, svc.reason)
		assert.Equal(t, "клиент заболел", *svc.reason)
	})

	t.Run("empty body", func(t *testing.T) {
		svc := &fakeService{}
		rec := httptest.NewRecorder()
		NewHandler(svc, logger.NewNop()).Handle(rec, newRequest("42", ""))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, svc.calls)
		assert.Nil(t, svc.reason)
	})
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
		wantCalls  int
	}{
		{name: "bad id", id: "x", wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "1", body: `{"reason":1}`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "1", err: appointments.ErrAppointmentNotFound, wantStatus: http.StatusNotFound, wantCalls: 1},
		{name: "already cancelled", id: "1", err: appointments.ErrCannotCancel, wantStatus: http.StatusConflict, wantCalls: 1},
		{name: "internal", id: "1", err: appointments.ErrInternal, wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec, newRequest(tt.id, tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalls, svc.calls)
		})
	}
}
