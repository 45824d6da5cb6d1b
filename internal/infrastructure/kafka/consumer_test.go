package kafka

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"govdataviz/internal/domain"
	"govdataviz/internal/mocks"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestDecodeEvent(t *testing.T) {
	ev, ok := decodeEvent([]byte(`{"source":"bls","method":"series","key":"bls:series:LNS14000000:{}","status":"ok","duration_ms":42,"fetched_at":"2024-03-01T10:00:00Z"}`))
	assert.True(t, ok)
	assert.Equal(t, "bls", ev.Source)
	assert.Equal(t, int64(42), ev.DurationMs)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), ev.FetchedAt)

	_, ok = decodeEvent([]byte(`not json`))
	assert.False(t, ok)

	_, ok = decodeEvent([]byte(`{"method":"series"}`))
	assert.False(t, ok)
}

func TestBrokersSlice(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, (&Config{Brokers: " a:9092, b:9092 ,"}).brokersSlice())
	assert.Equal(t, []string{"localhost:9092"}, (&Config{}).brokersSlice())
	var nilCfg *Config
	assert.Equal(t, []string{"localhost:9092"}, nilCfg.brokersSlice())
}

// Ошибка обработчика повторяется на том же событии, пока он не справится.
func TestConsumer_HandleRetriesInPlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ev := domain.FetchEvent{Source: domain.SourceEIA, Method: "series", Key: "eia:series:solar"}
	handler := mocks.NewMockIFetchEventHandler(ctrl)
	gomock.InOrder(
		handler.EXPECT().HandleFetchEvent(gomock.Any(), ev).Return(errors.New("clickhouse down")).Times(2),
		handler.EXPECT().HandleFetchEvent(gomock.Any(), ev).Return(nil),
	)

	c := &Consumer{handler: handler, log: newTestLogger(), retryDelay: time.Millisecond}
	assert.NoError(t, c.handle(context.Background(), ev))
}

// При отмене ctx необработанное событие не считается обработанным.
func TestConsumer_HandleStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	handler := mocks.NewMockIFetchEventHandler(ctrl)
	handler.EXPECT().
		HandleFetchEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.FetchEvent) error {
			cancel()
			return errors.New("clickhouse down")
		})

	c := &Consumer{handler: handler, log: newTestLogger(), retryDelay: time.Hour}
	assert.ErrorIs(t, c.handle(ctx, domain.FetchEvent{Source: domain.SourceBLS, Method: "series"}), context.Canceled)
}
