package integration

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/pg"
	"govdataviz/tests/integration/testutil"
)

// pgContainer — контейнер PostgreSQL, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var pgContainer *testutil.PostgresContainer

// newTestLogger создаёт логгер для тестов.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// setupFetchLog подключается к тестовой БД, прогоняет миграции и очищает журнал.
func setupFetchLog(t *testing.T) (*pg.DB, *pg.FetchLogRepo) {
	t.Helper()

	ctx := context.Background()
	cfg := pgContainer.Config()
	db, err := pg.New(ctx, &cfg)
	require.NoError(t, err, "не удалось создать pg.DB")
	t.Cleanup(func() {
		db.Close()
	})

	require.NoError(t, pg.Migrate(ctx, db), "миграции должны пройти")
	require.NoError(t, pg.Migrate(ctx, db), "повторный прогон миграций не должен падать")

	_, err = db.ExecContext(ctx, "TRUNCATE TABLE fetch_log RESTART IDENTITY")
	require.NoError(t, err, "не удалось очистить таблицу fetch_log")

	return db, pg.NewFetchLogRepo(db, newTestLogger())
}

// =============================================================================
// Тесты журнала обращений
// =============================================================================

func TestFetchLog_SaveFetch(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	db, repo := setupFetchLog(t)
	ctx := context.Background()

	ev := domain.FetchEvent{
		Source:     domain.SourceBLS,
		Method:     "getSeries",
		Key:        `bls:getSeries:{"seriesId":"LNS14000000"}`,
		Status:     domain.FetchStatusOK,
		DurationMs: 120,
		FetchedAt:  time.Now(),
	}
	require.NoError(t, repo.SaveFetch(ctx, ev), "SaveFetch должен успешно сохранить")

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fetch_log").Scan(&count))
	assert.Equal(t, 1, count, "в таблице должна быть 1 запись")
}

func TestFetchLog_RecentFetches(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	_, repo := setupFetchLog(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	events := []domain.FetchEvent{
		{Source: domain.SourceBLS, Method: "getSeries", Key: "a", Status: domain.FetchStatusOK, FetchedAt: now.Add(-2 * time.Second)},
		{Source: domain.SourceFRED, Method: "search", Key: "b", Status: domain.FetchStatusError, Error: "upstream status 500", FetchedAt: now.Add(-time.Second)},
		{Source: domain.SourceBLS, Method: "getSeries", Key: "c", Status: domain.FetchStatusOK, FetchedAt: now},
	}
	for _, ev := range events {
		require.NoError(t, repo.SaveFetch(ctx, ev))
	}

	t.Run("все источники, новые сначала", func(t *testing.T) {
		got, err := repo.RecentFetches(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "c", got[0].Key, "первая запись — самая новая")
		assert.Equal(t, "b", got[1].Key)
		assert.Equal(t, "upstream status 500", got[1].Error)
		assert.Equal(t, "a", got[2].Key, "последняя запись — самая старая")
		assert.NotZero(t, got[0].ID, "ID должен быть назначен")
	})

	t.Run("фильтр по источнику", func(t *testing.T) {
		got, err := repo.RecentFetches(ctx, domain.SourceBLS, 10)
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, ev := range got {
			assert.Equal(t, domain.SourceBLS, ev.Source)
		}
	})

	t.Run("ограничение количества", func(t *testing.T) {
		got, err := repo.RecentFetches(ctx, "", 1)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestFetchLog_RecentFetches_Empty(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	_, repo := setupFetchLog(t)

	got, err := repo.RecentFetches(context.Background(), "", 50)
	require.NoError(t, err, "пустой журнал не должен возвращать ошибку")
	assert.Empty(t, got)
}

func TestFetchLog_Ping(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	_, repo := setupFetchLog(t)
	assert.NoError(t, repo.Ping(context.Background()), "Ping должен успешно проверить соединение")
}
