package get_day_overview

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
)

// UseCase use case обзора дня для календаря администратора
type UseCase struct {
	serviceRepo ServiceRepository
	loader      ScheduleLoader
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(serviceRepo ServiceRepository, loader ScheduleLoader, logger Logger) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		loader:      loader,
		logger:      logger,
	}
}

// Execute собирает рабочие часы, блокировки, записи и (опционально) слоты на дату.
// Ограничения на прошлые даты и горизонт записи здесь не действуют.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayOverview: date=%s", req.Date)

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return nil, fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// 2. Получаем услугу, если запрошены слоты
	var service *domain.Service
	if req.ServiceID != nil {
		var err error
		service, err = uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("GetDayOverview: service id=%d not found", *req.ServiceID)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("GetDayOverview: failed to get service id=%d: %v", *req.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
	}

	// 3. Загружаем расписание
	snapshot, err := uc.loader.Load(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetDayOverview: failed to load schedule for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 4. Определяем рабочие часы и действующие блокировки
	window := availability.ResolveWindow(req.Date, snapshot.GeneralHours, snapshot.CustomHours)

	resp := &Response{
		Date:         req.Date,
		Weekday:      domain.WeekdayName(req.Date),
		Window:       toWindow(window),
		BlockedHours: availability.ActiveBlocks(snapshot.BlockedHours, req.Date),
		Appointments: snapshot.Appointments,
		ServiceID:    req.ServiceID,
	}

	// 5. Слоты для услуги
	if service != nil {
		slots, err := availability.Compute(snapshot.Input(service.Profile()))
		if err != nil {
			uc.logger.Error("GetDayOverview: service id=%d has invalid timing: %v", service.ID, err)
			return nil, fmt.Errorf("%w: compute slots: %v", ErrInternal, err)
		}
		resp.Slots = slots
	}

	return resp, nil
}

func toWindow(w availability.Window) Window {
	result := Window{Open: w.Open, Source: w.Source}
	if w.Open {
		open := availability.ToHHMM(w.OpenMinutes)
		closing := availability.ToHHMM(w.CloseMinutes)
		result.OpenTime = &open
		result.CloseTime = &closing
	}
	return result
}
