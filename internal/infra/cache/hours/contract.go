package hours

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Loader загружает расписание из источника при промахе кеша
type Loader func(ctx context.Context) ([]domain.GeneralHour, error)

// Store хранилище закешированного расписания
type Store interface {
	// Load возвращает текущее поколение кеша и ok=false при отсутствии или истечении записи
	Load(ctx context.Context) (hours []domain.GeneralHour, generation int64, ok bool, err error)
	// Save сохраняет расписание, только если поколение не сменилось с момента Load
	Save(ctx context.Context, generation int64, hours []domain.GeneralHour, ttl time.Duration) error
	// Delete сбрасывает запись и начинает новое поколение
	Delete(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// RedisClient подмножество *redis.Client, используемое RedisStore
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}
