package hours

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

func sampleHours() []domain.GeneralHour {
	return []domain.GeneralHour{
		{ID: 1, Weekday: "monday", OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("18:00")},
		{ID: 7, Weekday: "sunday", IsClosed: true},
	}
}

type countingLoader struct {
	calls int
	hours []domain.GeneralHour
	err   error
}

func (l *countingLoader) load(_ context.Context) ([]domain.GeneralHour, error) {
	l.calls++
	return l.hours, l.err
}

func TestCacheMemoryHitAndInvalidate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	cache := New(store, time.Minute, logger.NewNop())
	loader := &countingLoader{hours: sampleHours()}

	got, err := cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), got)

	_, err = cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls, "second read must hit the cache")

	require.NoError(t, cache.Invalidate(ctx))

	_, err = cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls, "read after invalidate must reload")
}

func TestCacheMemoryExpires(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	cache := New(store, time.Minute, logger.NewNop())
	loader := &countingLoader{hours: sampleHours()}

	_, err := cache.Get(ctx, loader.load)
	require.NoError(t, err)

	now = now.Add(59 * time.Second)
	_, err = cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.Equal(t, 1, loader.calls)

	now = now.Add(time.Second)
	_, err = cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.Equal(t, 2, loader.calls)
}

func TestCacheCallerCannotMutateCachedValue(t *testing.T) {
	ctx := context.Background()
	cache := New(NewMemoryStore(), time.Minute, logger.NewNop())
	loader := &countingLoader{hours: sampleHours()}

	got, err := cache.Get(ctx, loader.load)
	require.NoError(t, err)
	got[0].IsClosed = true

	again, err := cache.Get(ctx, loader.load)
	require.NoError(t, err)
	assert.False(t, again[0].IsClosed)
}

func TestCacheDisabledAlwaysLoads(t *testing.T) {
	ctx := context.Background()
	cache := New(NewMemoryStore(), 0, logger.NewNop())
	loader := &countingLoader{hours: sampleHours()}

	for i := 0; i < 3; i++ {
		_, err := cache.Get(ctx, loader.load)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, loader.calls)
}

func TestCacheLoaderError(t *testing.T) {
	cache := New(NewMemoryStore(), time.Minute, logger.NewNop())
	loader := &countingLoader{err: errors.New("db down")}

	_, err := cache.Get(context.Background(), loader.load)
	assert.ErrorIs(t, err, ErrLoad)
}

// fakeRedis хранит значения в map и отдает результаты в виде команд go-redis
type fakeRedis struct {
	data   map[string][]byte
	ttl    map[string]time.Duration
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string][]byte{}, ttl: map[string]time.Duration{}}
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.([]byte)
	f.ttl[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Incr(_ context.Context, key string) *redis.IntCmd {
	var n int64
	if v, ok := f.data[key]; ok {
		n, _ = strconv.ParseInt(string(v), 10, 64)
	}
	n++
	f.data[key] = []byte(strconv.FormatInt(n, 10))
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	client := newFakeRedis()
	store := NewRedisStore(client, "salon:general_hours")

	_, generation, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(0), generation)

	require.NoError(t, store.Save(ctx, generation, sampleHours(), 5*time.Minute))
	assert.Equal(t, 5*time.Minute, client.ttl["salon:general_hours:g0"])

	got, _, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, sampleHours(), got)

	require.NoError(t, store.Delete(ctx))
	assert.NotContains(t, client.data, "salon:general_hours:g0")

	_, generation, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int64(1), generation)

	// запись прошлого поколения не становится видимой
	require.NoError(t, store.Save(ctx, 0, sampleHours(), 5*time.Minute))
	_, _, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreDropsStaleGeneration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, generation, ok, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Delete(ctx))
	require.NoError(t, store.Save(ctx, generation, sampleHours(), time.Minute))

	_, _, ok, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

// Чтение, начатое до записи расписания, не должно вернуть старые часы в кеш
// после Invalidate
func TestCacheInvalidateDuringLoad(t *testing.T) {
	stores := map[string]func() Store{
		"memory": func() Store { return NewMemoryStore() },
		"redis":  func() Store { return NewRedisStore(newFakeRedis(), "salon:general_hours") },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			cache := New(newStore(), time.Minute, logger.NewNop())

			var (
				mu      sync.Mutex
				current = sampleHours()
				calls   int
				started = make(chan struct{})
				release = make(chan struct{})
			)
			load := func(context.Context) ([]domain.GeneralHour, error) {
				mu.Lock()
				snapshot := cloneHours(current)
				calls++
				first := calls == 1
				mu.Unlock()

				if first {
					close(started)
					<-release
				}
				return snapshot, nil
			}

			done := make(chan error, 1)
			go func() {
				_, err := cache.Get(ctx, load)
				done <- err
			}()

			<-started
			mu.Lock()
			current[0].IsClosed = true
			current[0].OpenTime = nil
			current[0].CloseTime = nil
			mu.Unlock()
			require.NoError(t, cache.Invalidate(ctx))
			close(release)
			require.NoError(t, <-done)

			got, err := cache.Get(ctx, load)
			require.NoError(t, err)
			require.NotEmpty(t, got)
			assert.Equal(t, "monday", got[0].Weekday)
			assert.True(t, got[0].IsClosed)
		})
	}
}

func TestCacheFallsBackWhenRedisFails(t *testing.T) {
	client := newFakeRedis()
	client.getErr = errors.New("connection refused")
	cache := New(NewRedisStore(client, "k"), time.Minute, logger.NewNop())
	loader := &countingLoader{hours: sampleHours()}

	got, err := cache.Get(context.Background(), loader.load)
	require.NoError(t, err)
	assert.Equal(t, sampleHours(), got)
	assert.Equal(t, 1, loader.calls)
}
