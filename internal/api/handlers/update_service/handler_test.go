package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type fakeCatalog struct{ err error }

func (f fakeCatalog) Update(_ context.Context, id int64, in *models.ServiceInput) (*models.ServiceResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ServiceResponse{ID: id, Name: in.Name, DurationMinutes: in.DurationMinutes}, nil
}

func TestHandle(t *testing.T) {
	body := `{"name":"Haircut","durationMinutes":45,"bufferMinutes":10,"price":1500}`

	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
	}{
		{name: "ok", id: "3", body: body, wantStatus: http.StatusOK},
		{name: "bad id", id: "x", body: body, wantStatus: http.StatusBadRequest},
		{name: "bad body", id: "3", body: `{"name":1}`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "3", body: body, err: catalog.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid", id: "3", body: body, err: catalog.ErrInvalidInput, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(fakeCatalog{err: tt.err}, logger.NewNop())
			req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/services/"+tt.id, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"serviceId": tt.id})
			rec := httptest.NewRecorder()

			h.Handle(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
