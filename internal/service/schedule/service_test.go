package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	blockedRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blocked"
	hoursRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

type fakeHoursRepo struct {
	general   map[string]domain.GeneralHour
	custom    map[types.Date]domain.CustomHour
	upsertErr error
}

func newFakeHoursRepo() *fakeHoursRepo {
	return &fakeHoursRepo{
		general: map[string]domain.GeneralHour{},
		custom:  map[types.Date]domain.CustomHour{},
	}
}

func (r *fakeHoursRepo) ListGeneral(_ context.Context) ([]domain.GeneralHour, error) {
	out := make([]domain.GeneralHour, 0, len(r.general))
	for _, h := range r.general {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHoursRepo) UpsertGeneral(_ context.Context, hour *domain.GeneralHour) (*domain.GeneralHour, error) {
	if r.upsertErr != nil {
		return nil, r.upsertErr
	}
	hour.ID = int64(len(r.general) + 1)
	r.general[hour.Weekday] = *hour
	return hour, nil
}

func (r *fakeHoursRepo) ListCustom(_ context.Context, _, _ *types.Date) ([]domain.CustomHour, error) {
	out := make([]domain.CustomHour, 0, len(r.custom))
	for _, h := range r.custom {
		out = append(out, h)
	}
	return out, nil
}

func (r *fakeHoursRepo) UpsertCustom(_ context.Context, hour *domain.CustomHour) (*domain.CustomHour, error) {
	hour.ID = 1
	r.custom[hour.Date] = *hour
	return hour, nil
}

func (r *fakeHoursRepo) DeleteCustom(_ context.Context, date types.Date) error {
	if _, ok := r.custom[date]; !ok {
		return hoursRepo.ErrCustomHourNotFound
	}
	delete(r.custom, date)
	return nil
}

type fakeBlockedRepo struct {
	items  []domain.BlockedHour
	nextID int64
}

func (r *fakeBlockedRepo) ListAll(_ context.Context) ([]domain.BlockedHour, error) {
	return r.items, nil
}

func (r *fakeBlockedRepo) Create(_ context.Context, block *domain.BlockedHour) (*domain.BlockedHour, error) {
	r.nextID++
	block.ID = r.nextID
	r.items = append(r.items, *block)
	return block, nil
}

func (r *fakeBlockedRepo) Delete(_ context.Context, id int64) error {
	for i, b := range r.items {
		if b.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return blockedRepo.ErrBlockedHourNotFound
}

type fakeCache struct {
	invalidations int
	err           error
}

func (c *fakeCache) Invalidate(_ context.Context) error {
	c.invalidations++
	return c.err
}

// immediateTx выполняет функцию без транзакции
type immediateTx struct{ calls int }

func (m *immediateTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixture struct {
	hours   *fakeHoursRepo
	blocked *fakeBlockedRepo
	cache   *fakeCache
	tx      *immediateTx
	svc     *Service
}

func newFixture() *fixture {
	f := &fixture{
		hours:   newFakeHoursRepo(),
		blocked: &fakeBlockedRepo{},
		cache:   &fakeCache{},
		tx:      &immediateTx{},
	}
	f.svc = NewService(f.hours, f.blocked, f.cache, f.tx, logger.NewNop())
	return f
}

func TestUpdateGeneralHours(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.UpdateGeneralHours(context.Background(), &models.UpdateGeneralHoursRequest{
		Days: []models.GeneralHourInput{
			{Weekday: "monday", OpenTime: ptr.Ptr("09:00:00"), CloseTime: ptr.Ptr("18:00")},
			{Weekday: "sunday", IsClosed: true, OpenTime: ptr.Ptr("10:00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.cache.invalidations)

	require.Len(t, resp.Days, 7)
	assert.Equal(t, "monday", resp.Days[0].Weekday)
	assert.Equal(t, "09:00", *resp.Days[0].OpenTime)
	assert.True(t, resp.Days[1].IsClosed, "tuesday has no row and is reported closed")
	assert.Nil(t, resp.Days[1].UpdatedAt)
	assert.True(t, resp.Days[6].IsClosed)
	assert.Nil(t, f.hours.general["sunday"].OpenTime, "closed day drops its times")
}

func TestUpdateGeneralHoursValidation(t *testing.T) {
	tests := []struct {
		name string
		days []models.GeneralHourInput
		err  error
	}{
		{name: "empty", days: nil, err: ErrInvalidInput},
		{name: "unknown weekday", days: []models.GeneralHourInput{{Weekday: "funday", IsClosed: true}}, err: ErrInvalidInput},
		{name: "open without times", days: []models.GeneralHourInput{{Weekday: "monday"}}, err: ErrInvalidInput},
		{name: "bad time", days: []models.GeneralHourInput{{Weekday: "monday", OpenTime: ptr.Ptr("9am"), CloseTime: ptr.Ptr("18:00")}}, err: ErrInvalidInput},
		{name: "open after close", days: []models.GeneralHourInput{{Weekday: "monday", OpenTime: ptr.Ptr("18:00"), CloseTime: ptr.Ptr("09:00")}}, err: ErrInvalidTimeRange},
		{
			name: "duplicate weekday",
			days: []models.GeneralHourInput{{Weekday: "monday", IsClosed: true}, {Weekday: "monday", IsClosed: true}},
			err:  ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.svc.UpdateGeneralHours(context.Background(), &models.UpdateGeneralHoursRequest{Days: tt.days})
			assert.ErrorIs(t, err, tt.err)
			assert.Zero(t, f.cache.invalidations)
		})
	}
}

func TestUpdateGeneralHoursRepositoryErrorKeepsCache(t *testing.T) {
	f := newFixture()
	f.hours.upsertErr = errors.New("db down")

	_, err := f.svc.UpdateGeneralHours(context.Background(), &models.UpdateGeneralHoursRequest{
		Days: []models.GeneralHourInput{{Weekday: "monday", IsClosed: true}},
	})
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, f.cache.invalidations)
}

func TestUpdateGeneralHoursCacheErrorIsNotFatal(t *testing.T) {
	f := newFixture()
	f.cache.err = errors.New("redis down")

	_, err := f.svc.UpdateGeneralHours(context.Background(), &models.UpdateGeneralHoursRequest{
		Days: []models.GeneralHourInput{{Weekday: "monday", IsClosed: true}},
	})
	assert.NoError(t, err)
}

func TestPutCustomHour(t *testing.T) {
	f := newFixture()
	date := types.MustDate(2025, time.December, 31)

	resp, err := f.svc.PutCustomHour(context.Background(), &models.PutCustomHourRequest{
		Date:     date,
		OpenTime: ptr.Ptr("10:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-31", resp.Date)
	assert.Nil(t, resp.CloseTime, "partial override is stored as is")

	_, err = f.svc.PutCustomHour(context.Background(), &models.PutCustomHourRequest{
		Date:      date,
		OpenTime:  ptr.Ptr("15:00"),
		CloseTime: ptr.Ptr("10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = f.svc.PutCustomHour(context.Background(), &models.PutCustomHourRequest{IsClosed: true})
	assert.ErrorIs(t, err, ErrInvalidInput)

	require.NoError(t, f.svc.DeleteCustomHour(context.Background(), date))
	assert.ErrorIs(t, f.svc.DeleteCustomHour(context.Background(), date), ErrCustomHourNotFound)
}

func TestCreateBlockedHour(t *testing.T) {
	f := newFixture()

	resp, err := f.svc.CreateBlockedHour(context.Background(), &models.CreateBlockedHourRequest{
		Date:      "2025-01-06",
		TimeFrom:  "12:00",
		TimeUntil: "13:00:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "none", resp.RepeatType)
	assert.Equal(t, "13:00", resp.TimeUntil)

	tests := []struct {
		name string
		req  models.CreateBlockedHourRequest
		err  error
	}{
		{name: "bad date", req: models.CreateBlockedHourRequest{Date: "06.01.2025", TimeFrom: "12:00", TimeUntil: "13:00"}, err: ErrInvalidInput},
		{name: "missing time", req: models.CreateBlockedHourRequest{Date: "2025-01-06", TimeFrom: "12:00"}, err: ErrInvalidInput},
		{name: "empty range", req: models.CreateBlockedHourRequest{Date: "2025-01-06", TimeFrom: "12:00", TimeUntil: "12:00"}, err: ErrInvalidTimeRange},
		{name: "unknown repeat", req: models.CreateBlockedHourRequest{Date: "2025-01-06", TimeFrom: "12:00", TimeUntil: "13:00", RepeatType: "yearly"}, err: ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateBlockedHour(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.err)
		})
	}

	list, err := f.svc.ListBlockedHours(context.Background())
	require.NoError(t, err)
	require.Len(t, list.BlockedHours, 1)

	require.NoError(t, f.svc.DeleteBlockedHour(context.Background(), list.BlockedHours[0].ID))
	assert.ErrorIs(t, f.svc.DeleteBlockedHour(context.Background(), 42), ErrBlockedHourNotFound)
}

func TestListCustomHoursRejectsInvertedRange(t *testing.T) {
	f := newFixture()
	from := types.MustDate(2025, time.March, 10)
	to := types.MustDate(2025, time.March, 1)

	_, err := f.svc.ListCustomHours(context.Background(), &from, &to)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
