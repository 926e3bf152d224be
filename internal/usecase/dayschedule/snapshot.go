package dayschedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Snapshot данные расписания на одну дату
type Snapshot struct {
	Date         types.Date
	GeneralHours []domain.GeneralHour
	CustomHours  []domain.CustomHour
	BlockedHours []domain.BlockedHour   // весь каталог с якорем <= Date
	Appointments []*domain.Appointment // без отмененных
}

// Input собирает вход движка доступности для услуги
func (s *Snapshot) Input(profile domain.ServiceProfile) availability.Input {
	booked := make([]domain.BookedInterval, 0, len(s.Appointments))
	for _, a := range s.Appointments {
		if a.OccupiesTime() {
			booked = append(booked, a.BookedInterval())
		}
	}
	return availability.Input{
		Date:         s.Date,
		Service:      profile,
		GeneralHours: s.GeneralHours,
		CustomHours:  s.CustomHours,
		BlockedHours: s.BlockedHours,
		Appointments: booked,
	}
}

// MalformedBlocks возвращает действующие в эту дату блокировки, время которых
// нельзя разобрать. Расчет слотов их не учитывает.
func (s *Snapshot) MalformedBlocks() []domain.BlockedHour {
	return availability.MalformedBlocks(availability.ActiveBlocks(s.BlockedHours, s.Date))
}

// Loader читает снимок расписания из репозиториев
type Loader struct {
	hoursRepo       HoursRepository
	blockedRepo     BlockedRepository
	appointmentRepo AppointmentRepository
	hoursCache      HoursCache
}

// NewLoader создает загрузчик снимков расписания
func NewLoader(
	hoursRepo HoursRepository,
	blockedRepo BlockedRepository,
	appointmentRepo AppointmentRepository,
	hoursCache HoursCache,
) *Loader {
	return &Loader{
		hoursRepo:       hoursRepo,
		blockedRepo:     blockedRepo,
		appointmentRepo: appointmentRepo,
		hoursCache:      hoursCache,
	}
}

// Load читает снимок на дату.
// Внутри транзакции общие часы читаются из БД в обход кэша,
// а записи на дату блокируются.
func (l *Loader) Load(ctx context.Context, date types.Date) (*Snapshot, error) {
	var (
		general []domain.GeneralHour
		err     error
	)
	if dbmetrics.IsInTransaction(ctx) {
		general, err = l.hoursRepo.ListGeneral(ctx)
	} else {
		general, err = l.hoursCache.Get(ctx, l.hoursRepo.ListGeneral)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: general hours: %v", ErrLoad, err)
	}

	custom, err := l.hoursRepo.ListCustom(ctx, &date, &date)
	if err != nil {
		return nil, fmt.Errorf("%w: custom hours: %v", ErrLoad, err)
	}

	blocked, err := l.blockedRepo.ListUntil(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: blocked hours: %v", ErrLoad, err)
	}

	appointments, err := l.appointmentRepo.ListByDate(ctx, date, false)
	if err != nil {
		return nil, fmt.Errorf("%w: appointments: %v", ErrLoad, err)
	}

	return &Snapshot{
		Date:         date,
		GeneralHours: general,
		CustomHours:  custom,
		BlockedHours: blocked,
		Appointments: appointments,
	}, nil
}
