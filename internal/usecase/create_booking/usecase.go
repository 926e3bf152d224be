package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/availability"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
)

// UseCase use case для создания записи
type UseCase struct {
	serviceRepo     ServiceRepository
	appointmentRepo AppointmentRepository
	loader          ScheduleLoader
	policy          BookingPolicy
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	serviceRepo ServiceRepository,
	appointmentRepo AppointmentRepository,
	loader ScheduleLoader,
	policy BookingPolicy,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:     serviceRepo,
		appointmentRepo: appointmentRepo,
		loader:          loader,
		policy:          policy,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка идут в одной сериализуемой транзакции,
// ограничение appointments_no_overlap в БД отсекает оставшиеся гонки.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: service=%d, date=%s, time=%s", req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateBooking: service id=%d is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Валидация даты
	if err := uc.policy.CheckDate(req.Date); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, mapDateError(err)
	}

	// 4. Валидация времени (minNotice)
	startMinutes, err := req.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	if startMinutes < uc.policy.EarliestStart(req.Date) {
		uc.logger.Warn("CreateBooking: %s %s is too late to book", req.Date, req.StartTime)
		return nil, fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, uc.policy.MinNoticeMinutes())
	}

	var result *domain.Appointment

	// 5. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем расписание, записи на дату блокируются
		snapshot, err := uc.loader.Load(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load schedule for %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
		}
		for _, b := range snapshot.MalformedBlocks() {
			uc.logger.Warn("CreateBooking: blocked hour id=%d has invalid range %q-%q, ignored for %s",
				b.ID, b.TimeFrom, b.TimeUntil, req.Date)
		}

		// 5.2. Пересчитываем слоты и проверяем запрошенное время
		slots, err := availability.Compute(snapshot.Input(service.Profile()))
		if err != nil {
			uc.logger.Error("CreateBooking: service id=%d has invalid timing: %v", req.ServiceID, err)
			return fmt.Errorf("%w: compute slots: %v", ErrInternal, err)
		}
		if !availability.IsSlotAvailable(slots, req.StartTime.String()) {
			uc.logger.Warn("CreateBooking: slot %s %s is not available", req.Date, req.StartTime)
			uc.metrics.ObserveBookingConflict(conflictReasonRecheck)
			return ErrSlotNotAvailable
		}

		// 5.3. Создаем запись с денормализацией тайминга услуги
		appointment := &domain.Appointment{
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ClientEmail:     req.ClientEmail,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			BufferMinutes:   service.BufferMinutes,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			return err
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrInternal):
			return nil, err
		case errors.Is(err, appointmentRepo.ErrSlotTaken), appointmentRepo.IsConflict(err):
			uc.logger.Warn("CreateBooking: concurrent booking for %s %s: %v", req.Date, req.StartTime, err)
			uc.metrics.ObserveBookingConflict(conflictReasonStorage)
			return nil, ErrSlotNotAvailable
		default:
			uc.logger.Error("CreateBooking: failed to create appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created appointment id=%d", result.ID)

	return toResponse(result), nil
}

func toResponse(a *domain.Appointment) *Response {
	endTime, _ := a.StartTime.AddMinutes(a.DurationMinutes)
	return &Response{
		ID:              a.ID,
		ServiceID:       a.ServiceID,
		ServiceName:     a.ServiceName,
		Date:            a.Date,
		StartTime:       a.StartTime,
		EndTime:         endTime,
		DurationMinutes: a.DurationMinutes,
		BufferMinutes:   a.BufferMinutes,
		Status:          string(a.Status),
		ClientName:      a.ClientName,
		ClientPhone:     a.ClientPhone,
		ClientEmail:     a.ClientEmail,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
