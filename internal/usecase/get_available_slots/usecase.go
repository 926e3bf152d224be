package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	serviceRepo ServiceRepository
	loader      ScheduleLoader
	policy      BookingPolicy
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	loader ScheduleLoader,
	policy BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo: serviceRepo,
		loader:      loader,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s", req.ServiceID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("GetAvailableSlots: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Валидация даты
	if err := uc.policy.CheckDate(req.Date); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, mapDateError(err)
	}

	// 4. Загружаем расписание на дату
	snapshot, err := uc.loader.Load(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load schedule for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}
	for _, b := range snapshot.MalformedBlocks() {
		uc.logger.Warn("GetAvailableSlots: blocked hour id=%d has invalid range %q-%q, ignored for %s",
			b.ID, b.TimeFrom, b.TimeUntil, req.Date)
	}

	// 5. Вычисляем свободные слоты
	slots, err := availability.Compute(snapshot.Input(service.Profile()))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: service id=%d has invalid timing: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: compute slots: %v", ErrInternal, err)
	}

	// 6. Для сегодняшнего дня убираем слоты раньше минимального времени до записи
	slots = uc.policy.FilterNotice(req.Date, slots)
	uc.metrics.ObserveSlots(len(slots))

	uc.logger.Info("GetAvailableSlots: found %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		Slots:     slots,
	}, nil
}
