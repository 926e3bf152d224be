package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "занято")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":409,"message":"занято"}`, rec.Body.String())
}

func TestRespondJSONNilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"name":"x"}`},
		{name: "unknown field", body: `{"name":"x","extra":1}`, wantErr: true},
		{name: "empty", body: ``, wantErr: true},
		{name: "trailing data", body: `{"name":"x"}{"name":"y"}`, wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p payload
			err := DecodeJSON(req, &p)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "x", p.Name)
		})
	}
}

func TestPathAndQueryParams(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?date=2024-05-06&serviceId=3&includeCancelled=true&bad=x", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "12", "date": "2024-02-30"})

	id, err := PathInt64(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	_, err = PathDate(req, "date")
	assert.ErrorIs(t, err, ErrInvalidParam)

	_, err = PathInt64(req, "missing")
	assert.ErrorIs(t, err, ErrMissingParam)

	date, err := QueryDate(req, "date")
	require.NoError(t, err)
	require.NotNil(t, date)
	assert.Equal(t, "2024-05-06", date.String())

	none, err := QueryDate(req, "from")
	require.NoError(t, err)
	assert.Nil(t, none)

	serviceID, err := QueryInt64(req, "serviceId")
	require.NoError(t, err)
	assert.Equal(t, int64(3), *serviceID)

	include, err := QueryBool(req, "includeCancelled")
	require.NoError(t, err)
	assert.True(t, include)

	_, err = QueryBool(req, "bad")
	assert.ErrorIs(t, err, ErrInvalidParam)
}
