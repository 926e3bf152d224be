package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeRepo struct {
	items      map[int64]*domain.Appointment
	lastFilter domain.AppointmentsFilter
	listErr    error
}

func newFakeRepo(items ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{items: map[int64]*domain.Appointment{}}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.lastFilter = filter
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	a, ok := r.items[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	if !a.CanBeCancelled() {
		return appointmentRepo.ErrCannotCancel
	}
	a.Status = domain.StatusCancelled
	a.CancellationReason = reason
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	a, ok := r.items[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func appointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		ServiceID:       1,
		ServiceName:     "Haircut",
		ClientName:      "Anna",
		ClientPhone:     "+70000000000",
		Date:            types.MustDate(2025, time.January, 13),
		StartTime:       "10:00",
		DurationMinutes: 45,
		BufferMinutes:   15,
		Status:          status,
	}
}

func TestGetByID(t *testing.T) {
	svc := NewService(newFakeRepo(appointment(1, domain.StatusPending)), logger.NewNop())

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-01-13", resp.Date)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "10:45", resp.EndTime)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList(t *testing.T) {
	repo := newFakeRepo(appointment(1, domain.StatusPending))
	svc := NewService(repo, logger.NewNop())
	from := types.MustDate(2025, time.January, 1)
	to := types.MustDate(2025, time.January, 31)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		StartDate: &from,
		EndDate:   &to,
		Status:    ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
	require.NotNil(t, repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.lastFilter.Status)

	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{Status: ptr.Ptr("lost")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{StartDate: &to, EndDate: &from})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.listErr = errors.New("db down")
	_, err = svc.List(context.Background(), &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel(t *testing.T) {
	repo := newFakeRepo(
		appointment(1, domain.StatusConfirmed),
		appointment(2, domain.StatusCompleted),
	)
	svc := NewService(repo, logger.NewNop())

	require.NoError(t, svc.Cancel(context.Background(), 1, &models.CancelAppointmentRequest{Reason: ptr.Ptr("sick")}))
	assert.Equal(t, domain.StatusCancelled, repo.items[1].Status)

	err := svc.Cancel(context.Background(), 2, &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrCannotCancel)

	err = svc.Cancel(context.Background(), 3, &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo(
		appointment(1, domain.StatusPending),
		appointment(2, domain.StatusCancelled),
	)
	svc := NewService(repo, logger.NewNop())
	ctx := context.Background()

	require.NoError(t, svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "confirmed"}))
	assert.Equal(t, domain.StatusConfirmed, repo.items[1].Status)

	assert.ErrorIs(t, svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "cancelled"}), ErrInvalidTransition)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 2, &models.UpdateStatusRequest{Status: "confirmed"}), ErrInvalidTransition)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 1, &models.UpdateStatusRequest{Status: "done"}), ErrInvalidInput)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, 9, &models.UpdateStatusRequest{Status: "completed"}), ErrAppointmentNotFound)
}
