package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Cache кеш расписания дней недели. Создается в main и передается
// потребителям явно; каждая запись расписания должна вызывать Invalidate.
// Списки слотов не кешируются.
type Cache struct {
	store Store
	ttl   time.Duration
	log   Logger
}

// New создает кеш поверх хранилища. ttl <= 0 отключает кеширование.
func New(store Store, ttl time.Duration, log Logger) *Cache {
	return &Cache{store: store, ttl: ttl, log: log}
}

// Get возвращает расписание из кеша или загружает его через load.
// Ошибки хранилища кеша не фатальны: расписание читается из источника.
// Результат загрузки сохраняется, только если за время load не было Invalidate.
func (c *Cache) Get(ctx context.Context, load Loader) ([]domain.GeneralHour, error) {
	var (
		generation int64
		cacheable  = c.ttl > 0
	)
	if cacheable {
		hours, gen, ok, err := c.store.Load(ctx)
		if err != nil {
			// поколение неизвестно, сохранять результат нельзя
			c.log.Warn("hours cache: load failed, falling back to source: %v", err)
			cacheable = false
		}
		if ok {
			return cloneHours(hours), nil
		}
		generation = gen
	}

	hours, err := load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if cacheable {
		if err := c.store.Save(ctx, generation, hours, c.ttl); err != nil {
			c.log.Warn("hours cache: save failed: %v", err)
		} else {
			c.log.Debug("hours cache: stored %d general hours for %s (generation %d)", len(hours), c.ttl, generation)
		}
	}

	return cloneHours(hours), nil
}

// Invalidate сбрасывает закешированное расписание
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.store.Delete(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidate, err)
	}
	return nil
}

func cloneHours(hours []domain.GeneralHour) []domain.GeneralHour {
	if hours == nil {
		return []domain.GeneralHour{}
	}
	out := make([]domain.GeneralHour, len(hours))
	copy(out, hours)
	return out
}
