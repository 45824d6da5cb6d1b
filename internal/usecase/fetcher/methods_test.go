package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"govdataviz/internal/domain"
	"govdataviz/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type payload struct {
	ID     string    `json:"id"`
	Values []float64 `json:"values"`
}

var testReq = Request{Source: domain.SourceBLS, Method: "series", Key: "bls:series:X:{}", TTL: time.Hour}

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		parts []any
		want  string
	}{
		{"без частей", nil, "noaa:datasets"},
		{"строка как есть", []any{"LNS14000000"}, "noaa:datasets:LNS14000000"},
		{"срез строк через запятую", []any{[]string{"A", "B"}}, "noaa:datasets:A,B"},
		{"структура в json", []any{domain.BLSOptions{StartYear: "2020"}}, `noaa:datasets:{"startYear":"2020"}`},
		{"пустые опции", []any{"GDP", domain.FREDObservationOptions{}}, "noaa:datasets:GDP:{}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key("noaa", "datasets", tt.parts...))
		})
	}
}

// Попадание в кэш: внешний API не вызывается, журнал и брокер не трогаются.
func TestCached_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockCache.EXPECT().
		Get(gomock.Any(), testReq.Key).
		Return([]byte(`{"id":"X","values":[1,2]}`), true, nil)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	got, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (payload, error) {
		t.Fatal("fetch не должен вызываться при попадании в кэш")
		return payload{}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, payload{ID: "X", Values: []float64{1, 2}}, got)
}

// Промах: запрос к API, событие в журнал и брокер, запись в кэш с TTL.
func TestCached_Miss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	var stored []byte
	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return(nil, false, nil),
		mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev domain.FetchEvent) error {
				assert.Equal(t, domain.SourceBLS, ev.Source)
				assert.Equal(t, "series", ev.Method)
				assert.Equal(t, testReq.Key, ev.Key)
				assert.Equal(t, domain.FetchStatusOK, ev.Status)
				assert.Empty(t, ev.Error)
				return nil
			}),
		mockBroker.EXPECT().Send(gomock.Any(), []byte(domain.SourceBLS), gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value []byte) error {
				var ev domain.FetchEvent
				assert.NoError(t, json.Unmarshal(value, &ev))
				assert.Equal(t, testReq.Key, ev.Key)
				return nil
			}),
		mockCache.EXPECT().Set(gomock.Any(), testReq.Key, gomock.Any(), time.Hour).
			DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
				stored = value
				return nil
			}),
	)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	got, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (payload, error) {
		return payload{ID: "X", Values: []float64{3}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, payload{ID: "X", Values: []float64{3}}, got)
	assert.JSONEq(t, `{"id":"X","values":[3]}`, string(stored))
}

// Ошибка API: событие с ошибкой пишется, в кэш ничего не кладётся, ошибка возвращается как есть.
func TestCached_FetchError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	upstreamErr := errors.Join(domain.ErrUpstream, errors.New("status 500"))

	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return(nil, false, nil)
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.FetchEvent) error {
			assert.Equal(t, domain.FetchStatusError, ev.Status)
			assert.Contains(t, ev.Error, "status 500")
			return nil
		})
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	_, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (payload, error) {
		return payload{}, upstreamErr
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

// Сбои кэша, журнала и брокера не мешают отдать данные.
func TestCached_InfrastructureFailuresAreNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("disk full"))
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).Return(errors.New("pg down"))
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("kafka down"))
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	got, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (payload, error) {
		return payload{ID: "ok"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got.ID)
}

// Битое значение в кэше — перезапрос к API.
func TestCached_CorruptCachedValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return([]byte(`"строка вместо объекта"`), true, nil)
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).Return(nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(gomock.Any(), testReq.Key, gomock.Any(), time.Hour).Return(nil)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	got, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (payload, error) {
		return payload{ID: "fresh"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.ID)
}

// Первый ответ и ответ из кэша совпадают: оба декодируются из одних и тех же байтов.
func TestCached_MissAndHitAreIdentical(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	var stored []byte
	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return(nil, false, nil)
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).Return(nil)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(gomock.Any(), testReq.Key, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value []byte, _ time.Duration) error {
			stored = value
			return nil
		})

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())
	first, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (map[string]any, error) {
		return map[string]any{"n": 1, "at": time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, nil
	})
	require.NoError(t, err)

	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).DoAndReturn(func(context.Context, string) ([]byte, bool, error) {
		return stored, true, nil
	})
	second, err := Cached(context.Background(), f, testReq, func(ctx context.Context) (map[string]any, error) {
		t.Fatal("второй запрос должен прийти из кэша")
		return nil, nil
	})
	require.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
}

// Одновременные одинаковые промахи схлопываются в один запрос к API.
func TestCached_ConcurrentMissesShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return(nil, false, nil).Times(2)
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	mockCache.EXPECT().Set(gomock.Any(), testReq.Key, gomock.Any(), gomock.Any()).Return(nil).Times(1)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())

	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (payload, error) {
		if calls.Add(1) == 1 {
			close(started)
		}
		<-release
		return payload{ID: "shared"}, nil
	}

	var wg sync.WaitGroup
	results := make([]payload, 2)
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], _ = Cached(context.Background(), f, testReq, fetch)
	}()
	<-started
	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1], _ = Cached(context.Background(), f, testReq, fetch)
	}()
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "shared", results[0].ID)
	assert.Equal(t, "shared", results[1].ID)
}

// Отмена контекста первого вызывающего не обрывает общий запрос: второй вызывающий получает данные.
func TestCached_FirstCallerCancelDoesNotFailOthers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), testReq.Key).Return(nil, false, nil).Times(2)
	mockRepo.EXPECT().
		SaveFetch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.FetchEvent) error {
			assert.Equal(t, domain.FetchStatusOK, ev.Status, "отмена клиента не считается ошибкой API")
			return nil
		})
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockCache.EXPECT().Set(gomock.Any(), testReq.Key, gomock.Any(), gomock.Any()).Return(nil)

	f := New(mockCache, mockRepo, mockBroker, newTestLogger())

	started := make(chan struct{})
	release := make(chan struct{})
	fetch := func(ctx context.Context) (payload, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return payload{}, err
		}
		return payload{ID: "shared"}, nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := Cached(ctxA, f, testReq, fetch)
		errA <- err
	}()
	<-started

	type result struct {
		p   payload
		err error
	}
	resB := make(chan result, 1)
	go func() {
		p, err := Cached(context.Background(), f, testReq, fetch)
		resB <- result{p, err}
	}()
	time.Sleep(50 * time.Millisecond)

	cancelA()
	assert.ErrorIs(t, <-errA, context.Canceled, "отменённый вызывающий выходит сразу")

	close(release)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, "shared", b.p.ID)
}
