package hours

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// RedisStore хранилище в Redis, общее для нескольких экземпляров сервиса.
// Расписание лежит под ключом "<key>:g<поколение>", текущее поколение хранится
// в "<key>:generation". Delete увеличивает поколение, поэтому запись, загруженная
// до сброса, попадает под старый ключ, который никто не читает, и истекает по TTL.
type RedisStore struct {
	client RedisClient
	key    string
}

// NewRedisStore создает хранилище под ключом key
func NewRedisStore(client RedisClient, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

// cachedHour формат записи в Redis
type cachedHour struct {
	ID        int64     `json:"id"`
	Weekday   string    `json:"weekday"`
	IsClosed  bool      `json:"is_closed"`
	OpenTime  *string   `json:"open_time,omitempty"`
	CloseTime *string   `json:"close_time,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *RedisStore) generationKey() string {
	return s.key + ":generation"
}

func (s *RedisStore) dataKey(generation int64) string {
	return fmt.Sprintf("%s:g%d", s.key, generation)
}

func (s *RedisStore) Load(ctx context.Context) ([]domain.GeneralHour, int64, bool, error) {
	generation, err := s.client.Get(ctx, s.generationKey()).Int64()
	if errors.Is(err, redis.Nil) {
		generation = 0
	} else if err != nil {
		return nil, 0, false, fmt.Errorf("redis get %s: %w", s.generationKey(), err)
	}

	key := s.dataKey(generation)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, generation, false, nil
	}
	if err != nil {
		return nil, generation, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var cached []cachedHour
	if err := json.Unmarshal(data, &cached); err != nil {
		// битая запись равносильна промаху
		return nil, generation, false, fmt.Errorf("decode %s: %w", key, err)
	}

	hours := make([]domain.GeneralHour, 0, len(cached))
	for _, h := range cached {
		hours = append(hours, domain.GeneralHour{
			ID:        h.ID,
			Weekday:   h.Weekday,
			IsClosed:  h.IsClosed,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			UpdatedAt: h.UpdatedAt,
		})
	}
	return hours, generation, true, nil
}

func (s *RedisStore) Save(ctx context.Context, generation int64, hours []domain.GeneralHour, ttl time.Duration) error {
	cached := make([]cachedHour, 0, len(hours))
	for _, h := range hours {
		cached = append(cached, cachedHour{
			ID:        h.ID,
			Weekday:   h.Weekday,
			IsClosed:  h.IsClosed,
			OpenTime:  h.OpenTime,
			CloseTime: h.CloseTime,
			UpdatedAt: h.UpdatedAt,
		})
	}

	key := s.dataKey(generation)
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context) error {
	generation, err := s.client.Incr(ctx, s.generationKey()).Result()
	if err != nil {
		return fmt.Errorf("redis incr %s: %w", s.generationKey(), err)
	}

	// Старая запись уже недостижима, удаляем ее, чтобы не ждать TTL
	key := s.dataKey(generation - 1)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
