package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	blockedRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blocked"
	hoursRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/hours"
	"github.com/m04kA/SMC-SalonBooking/internal/service/schedule/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Service сервис управления расписанием салона: дни недели, переопределения на даты, блокировки
type Service struct {
	hoursRepo   HoursRepository
	blockedRepo BlockedRepository
	hoursCache  HoursCache
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo HoursRepository,
	blockedRepo BlockedRepository,
	hoursCache HoursCache,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:   hoursRepo,
		blockedRepo: blockedRepo,
		hoursCache:  hoursCache,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetGeneralHours возвращает расписание недели
func (s *Service) GetGeneralHours(ctx context.Context) (*models.GeneralHoursResponse, error) {
	hours, err := s.hoursRepo.ListGeneral(ctx)
	if err != nil {
		s.logger.Error("GetGeneralHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetGeneralHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainGeneralHours(hours), nil
}

// UpdateGeneralHours заменяет расписание перечисленных дней недели одной транзакцией
// и сбрасывает кеш расписания
func (s *Service) UpdateGeneralHours(ctx context.Context, req *models.UpdateGeneralHoursRequest) (*models.GeneralHoursResponse, error) {
	s.logger.Info("UpdateGeneralHours: updating %d days", len(req.Days))

	// 1. Валидируем все дни до записи
	if len(req.Days) == 0 {
		return nil, fmt.Errorf("%w: days are required", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(req.Days))
	hours := make([]*domain.GeneralHour, 0, len(req.Days))
	for _, day := range req.Days {
		hour, err := toGeneralHour(day)
		if err != nil {
			s.logger.Warn("UpdateGeneralHours: validation failed: %v", err)
			return nil, err
		}
		if seen[hour.Weekday] {
			return nil, fmt.Errorf("%w: duplicate weekday %q", ErrInvalidInput, hour.Weekday)
		}
		seen[hour.Weekday] = true
		hours = append(hours, hour)
	}

	// 2. Записываем все дни атомарно
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, hour := range hours {
			if _, err := s.hoursRepo.UpsertGeneral(ctx, hour); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateGeneralHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateGeneralHours - repository error: %v", ErrInternal, err)
	}

	// 3. Сбрасываем кеш. Запись уже зафиксирована, при ошибке кеш устареет не дольше TTL.
	if err := s.hoursCache.Invalidate(ctx); err != nil {
		s.logger.Error("UpdateGeneralHours: failed to invalidate hours cache: %v", err)
	}

	s.logger.Info("UpdateGeneralHours: successfully updated %d days", len(hours))
	return s.GetGeneralHours(ctx)
}

// ListCustomHours возвращает переопределения в диапазоне дат
func (s *Service) ListCustomHours(ctx context.Context, from, to *types.Date) (*models.CustomHoursListResponse, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, fmt.Errorf("%w: 'to' is before 'from'", ErrInvalidInput)
	}

	hours, err := s.hoursRepo.ListCustom(ctx, from, to)
	if err != nil {
		s.logger.Error("ListCustomHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCustomHourList(hours), nil
}

// PutCustomHour создает или заменяет переопределение на дату
func (s *Service) PutCustomHour(ctx context.Context, req *models.PutCustomHourRequest) (*models.CustomHourResponse, error) {
	s.logger.Info("PutCustomHour: date=%s closed=%t", req.Date, req.IsClosed)

	hour, err := toCustomHour(req)
	if err != nil {
		s.logger.Warn("PutCustomHour: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.hoursRepo.UpsertCustom(ctx, hour)
	if err != nil {
		s.logger.Error("PutCustomHour: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: PutCustomHour - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomHour(saved), nil
}

// DeleteCustomHour удаляет переопределение, дата возвращается к расписанию дня недели
func (s *Service) DeleteCustomHour(ctx context.Context, date types.Date) error {
	s.logger.Info("DeleteCustomHour: date=%s", date)

	if err := s.hoursRepo.DeleteCustom(ctx, date); err != nil {
		if errors.Is(err, hoursRepo.ErrCustomHourNotFound) {
			return ErrCustomHourNotFound
		}
		s.logger.Error("DeleteCustomHour: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteCustomHour - repository error: %v", ErrInternal, err)
	}
	return nil
}

// ListBlockedHours возвращает весь каталог блокировок
func (s *Service) ListBlockedHours(ctx context.Context) (*models.BlockedHoursListResponse, error) {
	blocks, err := s.blockedRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListBlockedHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlockedHours - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBlockedHourList(blocks), nil
}

// CreateBlockedHour создает блокировку
func (s *Service) CreateBlockedHour(ctx context.Context, req *models.CreateBlockedHourRequest) (*models.BlockedHourResponse, error) {
	s.logger.Info("CreateBlockedHour: date=%s %s-%s repeat=%s", req.Date, req.TimeFrom, req.TimeUntil, req.RepeatType)

	block, err := toBlockedHour(req)
	if err != nil {
		s.logger.Warn("CreateBlockedHour: validation failed: %v", err)
		return nil, err
	}

	created, err := s.blockedRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("CreateBlockedHour: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlockedHour - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedHour: created blocked hour id=%d", created.ID)
	return models.FromDomainBlockedHour(created), nil
}

// DeleteBlockedHour удаляет блокировку со всеми повторениями
func (s *Service) DeleteBlockedHour(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlockedHour: id=%d", id)

	if err := s.blockedRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedRepo.ErrBlockedHourNotFound) {
			return ErrBlockedHourNotFound
		}
		s.logger.Error("DeleteBlockedHour: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedHour - repository error: %v", ErrInternal, err)
	}
	return nil
}
