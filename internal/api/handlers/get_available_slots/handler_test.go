package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	getAvailableSlots "github.com/m04kA/SMC-SalonBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
	got  *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	resp := *f.resp
	resp.Date = req.Date
	resp.ServiceID = req.ServiceID
	return &resp, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		uc         *fakeUseCase
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			query:      "?serviceId=1&date=2024-05-06",
			uc:         &fakeUseCase{resp: &getAvailableSlots.Response{Slots: []string{"09:00", "09:30"}}},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2024-05-06","serviceId":1,"slots":["09:00","09:30"]}`,
		},
		{
			name:       "empty slots are an array",
			query:      "?serviceId=1&date=2024-05-06",
			uc:         &fakeUseCase{resp: &getAvailableSlots.Response{}},
			wantStatus: http.StatusOK,
			wantBody:   `{"date":"2024-05-06","serviceId":1,"slots":[]}`,
		},
		{name: "missing service", query: "?date=2024-05-06", uc: &fakeUseCase{}, wantStatus: http.StatusBadRequest},
		{name: "bad service", query: "?serviceId=abc&date=2024-05-06", uc: &fakeUseCase{}, wantStatus: http.StatusBadRequest},
		{name: "missing date", query: "?serviceId=1", uc: &fakeUseCase{}, wantStatus: http.StatusBadRequest},
		{name: "bad date", query: "?serviceId=1&date=06.05.2024", uc: &fakeUseCase{}, wantStatus: http.StatusBadRequest},
		{name: "not found", query: "?serviceId=1&date=2024-05-06", uc: &fakeUseCase{err: getAvailableSlots.ErrServiceNotFound}, wantStatus: http.StatusNotFound},
		{name: "past date", query: "?serviceId=1&date=2024-05-06", uc: &fakeUseCase{err: getAvailableSlots.ErrInvalidDate}, wantStatus: http.StatusBadRequest},
		{name: "internal", query: "?serviceId=1&date=2024-05-06", uc: &fakeUseCase{err: getAvailableSlots.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.uc, logger.NewNop())
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
