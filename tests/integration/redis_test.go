package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govdataviz/internal/infrastructure/redis"
	"govdataviz/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	ctx := context.Background()
	cfg := redisContainer.Config("test:")
	client, err := redis.New(ctx, &cfg)
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	require.NoError(t, client.FlushDB(ctx).Err(), "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, cfg.KeyPrefix, newTestLogger())
}

// =============================================================================
// Тесты Redis кэша
// =============================================================================

func TestRedisCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	payload := []byte(`{"id":"LNS14000000","data":[{"date":"2024-01-01","value":3.7}]}`)
	require.NoError(t, cache.Set(ctx, "bls:getSeries:{}", payload, time.Hour))

	value, found, err := cache.Get(ctx, "bls:getSeries:{}")
	require.NoError(t, err, "Get должен успешно получить")
	assert.True(t, found, "ключ должен быть найден")
	assert.Equal(t, payload, value, "значение должно совпадать побайтно")
}

func TestRedisCache_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)

	value, found, err := cache.Get(context.Background(), "несуществующий_ключ")
	require.NoError(t, err, "Get несуществующего ключа не должен возвращать ошибку")
	assert.False(t, found, "ключ не должен быть найден")
	assert.Nil(t, value)
}

func TestRedisCache_Expiry(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short", []byte(`1`), time.Second))
	ok, err := cache.Exists(ctx, "short")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Eventually(t, func() bool {
		ok, err := cache.Exists(ctx, "short")
		return err == nil && !ok
	}, 5*time.Second, 100*time.Millisecond, "запись должна истечь")
}

func TestRedisCache_DeleteAndKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "noaa:datasets:{}", []byte(`[]`), time.Hour))
	require.NoError(t, cache.Set(ctx, "eia:getSeries:{}", []byte(`{}`), time.Hour))

	keys, err := cache.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"eia:getSeries:{}", "noaa:datasets:{}"}, keys, "ключи без префикса, по алфавиту")

	require.NoError(t, cache.Delete(ctx, "eia:getSeries:{}"))
	keys, err = cache.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"noaa:datasets:{}"}, keys)

	n, err := cache.Purge(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "redis сам удаляет просроченные записи")
}
