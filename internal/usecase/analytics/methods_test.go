package analytics

import (
	"context"
	"errors"
	"log/slog"
	"os"
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

func TestHandleFetchEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWriter := mocks.NewMockIFetchAnalytics(ctrl)
	uc := New(mockWriter, newTestLogger())

	ev := domain.FetchEvent{
		Source: domain.SourceBLS, Method: "series", Key: "bls:series:LNS14000000:{}",
		Status: domain.FetchStatusOK, DurationMs: 120, FetchedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	mockWriter.EXPECT().WriteFetchEvent(gomock.Any(), ev).Return(nil)

	require.NoError(t, uc.HandleFetchEvent(context.Background(), ev))
}

func TestHandleFetchEvent_FillsTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWriter := mocks.NewMockIFetchAnalytics(ctrl)
	uc := New(mockWriter, newTestLogger())

	mockWriter.EXPECT().WriteFetchEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev domain.FetchEvent) error {
			assert.False(t, ev.FetchedAt.IsZero())
			return nil
		})

	require.NoError(t, uc.HandleFetchEvent(context.Background(), domain.FetchEvent{Source: "eia", Method: "electricity"}))
}

func TestHandleFetchEvent_SkipsIncomplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// писатель не вызывается
	uc := New(mocks.NewMockIFetchAnalytics(ctrl), newTestLogger())

	assert.NoError(t, uc.HandleFetchEvent(context.Background(), domain.FetchEvent{Method: "series"}))
	assert.NoError(t, uc.HandleFetchEvent(context.Background(), domain.FetchEvent{Source: "bls"}))
}

func TestHandleFetchEvent_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockWriter := mocks.NewMockIFetchAnalytics(ctrl)
	uc := New(mockWriter, newTestLogger())

	mockWriter.EXPECT().WriteFetchEvent(gomock.Any(), gomock.Any()).Return(errors.New("clickhouse down"))

	err := uc.HandleFetchEvent(context.Background(), domain.FetchEvent{Source: "bls", Method: "series"})
	assert.ErrorContains(t, err, "clickhouse down")
}
