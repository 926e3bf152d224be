package appointment

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func TestIsConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
		{name: "exclusion violation", err: &pq.Error{Code: "23P01"}, want: true},
		{name: "unique violation", err: &pq.Error{Code: "23505"}, want: true},
		{name: "serialization failure", err: &pq.Error{Code: "40001"}, want: true},
		{name: "wrapped exclusion violation", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23P01"}), want: true},
		{name: "foreign key violation", err: &pq.Error{Code: "23503"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsConflict(tt.err))
		})
	}
}

func TestListByDateQuery(t *testing.T) {
	date := types.MustDate(2025, time.January, 13)

	query, args, err := listByDateQuery(date, false, true)
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE appointment_date = $1 AND status <> $2 ORDER BY start_time ASC FOR UPDATE")
	// squirrel раскрывает driver.Valuer, дата уходит строкой
	assert.Equal(t, []interface{}{"2025-01-13", domain.StatusCancelled}, args)

	query, args, err = listByDateQuery(date, true, false)
	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
	assert.NotContains(t, query, "status <>")
	assert.Len(t, args, 1)
}

func TestListQuery(t *testing.T) {
	from := types.MustDate(2025, time.January, 1)
	to := types.MustDate(2025, time.January, 31)
	status := domain.StatusConfirmed

	query, args, err := listQuery(domain.AppointmentsFilter{
		StartDate: &from,
		EndDate:   &to,
		ServiceID: ptr.Ptr(int64(3)),
		Status:    &status,
	})
	require.NoError(t, err)
	assert.Contains(t, query,
		"WHERE appointment_date >= $1 AND appointment_date <= $2 AND service_id = $3 AND status = $4 ORDER BY appointment_date ASC, start_time ASC")
	assert.Equal(t, []interface{}{from.String(), to.String(), int64(3), status}, args)

	query, _, err = listQuery(domain.AppointmentsFilter{IncludeCancelled: true})
	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
}

func TestCancelQuery(t *testing.T) {
	query, args, err := cancelQuery(7, ptr.Ptr("client asked"))
	require.NoError(t, err)

	assert.Equal(t,
		"UPDATE appointments SET status = $1, cancellation_reason = $2, cancelled_at = NOW(), updated_at = NOW() WHERE id = $3 AND status IN ($4,$5)",
		query)
	assert.Equal(t, domain.StatusCancelled, args[0])
	assert.Equal(t, int64(7), args[2])
	assert.Equal(t, "pending", args[3])
	assert.Equal(t, "confirmed", args[4])
}

func TestInsertQuery(t *testing.T) {
	a := &domain.Appointment{
		ServiceID:       1,
		ServiceName:     "Haircut",
		ClientName:      "Anna",
		ClientPhone:     "+70000000000",
		Date:            types.MustDate(2025, time.January, 13),
		StartTime:       "10:00",
		DurationMinutes: 60,
		BufferMinutes:   15,
		Status:          domain.StatusPending,
	}

	query, args, err := insertQuery(a)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO appointments (service_id,service_name,client_name,client_phone,client_email,appointment_date,start_time,duration_minutes,buffer_minutes,status,notes)")
	assert.Contains(t, query, "RETURNING id, created_at, updated_at")
	require.Len(t, args, 11)
	assert.Equal(t, 60, args[7])
	assert.Equal(t, 15, args[8])
}
