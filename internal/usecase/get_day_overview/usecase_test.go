package get_day_overview

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/dayschedule"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeServiceRepo struct{}

func (fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if id != 1 {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: 1, DurationMinutes: 60, IsActive: false}, nil
}

type staticLoader struct{ snapshot dayschedule.Snapshot }

func (l staticLoader) Load(_ context.Context, date types.Date) (*dayschedule.Snapshot, error) {
	snap := l.snapshot
	snap.Date = date
	return &snap, nil
}

func newUseCase() *UseCase {
	loader := staticLoader{snapshot: dayschedule.Snapshot{
		GeneralHours: []domain.GeneralHour{
			{Weekday: "monday", OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("12:00")},
		},
		CustomHours: []domain.CustomHour{
			{Date: types.MustDate(2024, time.May, 13), Type: domain.CustomHourTypeDay, CloseTime: ptr.Ptr("11:00")},
		},
		BlockedHours: []domain.BlockedHour{
			{ID: 1, BlockedDate: types.MustDate(2024, time.May, 6), TimeFrom: "10:00", TimeUntil: "10:30", RepeatType: domain.RepeatWeekly},
			{ID: 2, BlockedDate: types.MustDate(2024, time.May, 7), TimeFrom: "09:00", TimeUntil: "10:00", RepeatType: domain.RepeatNone},
		},
		Appointments: []*domain.Appointment{
			{ID: 7, StartTime: "11:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
		},
	}}
	return NewUseCase(fakeServiceRepo{}, loader, logger.NewNop())
}

func TestExecuteGeneralDay(t *testing.T) {
	resp, err := newUseCase().Execute(context.Background(), &Request{Date: types.MustDate(2024, time.May, 6)})
	require.NoError(t, err)

	assert.Equal(t, "monday", resp.Weekday)
	assert.True(t, resp.Window.Open)
	assert.Equal(t, availability.SourceGeneral, resp.Window.Source)
	assert.Equal(t, "09:00", *resp.Window.OpenTime)
	assert.Equal(t, "12:00", *resp.Window.CloseTime)

	require.Len(t, resp.BlockedHours, 1)
	assert.Equal(t, int64(1), resp.BlockedHours[0].ID)
	assert.Len(t, resp.Appointments, 1)
	assert.Nil(t, resp.Slots)
}

func TestExecuteWithServiceSlots(t *testing.T) {
	// Переопределение 13 мая закрывает салон в 11:00, время открытия наследуется
	resp, err := newUseCase().Execute(context.Background(), &Request{
		Date:      types.MustDate(2024, time.May, 13),
		ServiceID: ptr.Ptr(int64(1)),
	})
	require.NoError(t, err)

	assert.Equal(t, availability.SourceCustom, resp.Window.Source)
	assert.Equal(t, "11:00", *resp.Window.CloseTime)
	// Еженедельный блок 10:00-10:30 оставляет только 09:00-10:00
	assert.Equal(t, []string{"09:00"}, resp.Slots)
}

func TestExecuteClosedDayAndErrors(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &Request{Date: types.MustDate(2024, time.May, 8)})
	require.NoError(t, err)
	assert.False(t, resp.Window.Open)
	assert.Equal(t, availability.SourceDefault, resp.Window.Source)
	assert.Nil(t, resp.Window.OpenTime)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: types.MustDate(2024, time.May, 8), ServiceID: ptr.Ptr(int64(5))})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
