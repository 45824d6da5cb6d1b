package eia

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
	"govdataviz/internal/usecase/fetcher"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestUseCase(ctrl *gomock.Controller) (*UseCase, *mocks.MockIEIAClient, *mocks.MockICache, *mocks.MockIDatasetRepository) {
	mockClient := mocks.NewMockIEIAClient(ctrl)
	mockCache := mocks.NewMockICache(ctrl)
	mockRepo := mocks.NewMockIFetchLogRepository(ctrl)
	mockBroker := mocks.NewMockIProducer(ctrl)
	mockDatasets := mocks.NewMockIDatasetRepository(ctrl)
	mockRepo.EXPECT().SaveFetch(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockBroker.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f := fetcher.New(mockCache, mockRepo, mockBroker, newTestLogger())
	return New(mockClient, f, mockDatasets, newTestLogger()), mockClient, mockCache, mockDatasets
}

func TestGetSeries_FromAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, mockClient, mockCache, mockDatasets := newTestUseCase(ctrl)

	key := `eia:solar:{"frequency":"monthly","start":"2023-01","end":"2024-12"}`
	mockCache.EXPECT().Get(gomock.Any(), key).Return(nil, false, nil)
	mockClient.EXPECT().
		Records(gomock.Any(), gomock.Any(), domain.EIAOptions{Frequency: "monthly", Start: "2023-01", End: "2024-12"}).
		DoAndReturn(func(_ context.Context, ds domain.EIADataset, _ domain.EIAOptions) ([]domain.EIARecord, error) {
			assert.Equal(t, "SUN", ds.Facets["fueltypeid"])
			return []domain.EIARecord{
				{Period: "2024-03", Value: "15800"},
				{Period: "2024-02", Value: "not available"},
				{Period: "2024-01", Value: "8500.5"},
			}, nil
		})
	mockDatasets.EXPECT().SaveSeries(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ts domain.TimeSeries) error {
			assert.Equal(t, "EIA_SOLAR_GENERATION", ts.ID)
			assert.Equal(t, domain.SourceEIA, ts.Source)
			assert.Len(t, ts.Data, 3)
			return nil
		})
	mockCache.EXPECT().Set(gomock.Any(), key, gomock.Any(), 2*time.Hour).Return(nil)

	s, err := uc.GetSeries(context.Background(), "solar", domain.EIAOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceEIA, s.Source)
	assert.Equal(t, "EIA_SOLAR_GENERATION", s.SeriesID)
	assert.Equal(t, "monthly", s.Frequency)
	assert.Equal(t, domain.EIACopyright, s.Copyright)
	assert.Equal(t, []domain.EIADataPoint{
		{Period: "2024-01", Value: 8500.5},
		{Period: "2024-02", Value: 0},
		{Period: "2024-03", Value: 15800},
	}, s.Data)
}

// Ошибка API: отдаётся заглушка с source = mock, в кэш ничего не пишется.
func TestGetSeries_MockFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, mockClient, mockCache, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mockClient.EXPECT().Records(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(domain.ErrUpstream, errors.New("status 403")))
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	s, err := uc.GetSeries(context.Background(), "electricity", domain.EIAOptions{Frequency: "annual"})
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, s.Source)
	assert.Equal(t, "Total Electricity Generation (Mock)", s.Name)
	assert.Equal(t, "monthly", s.Frequency)
	require.Len(t, s.Data, 6)
	assert.Equal(t, domain.EIADataPoint{Period: "2024-01", Value: 325000}, s.Data[0])
}

// Заглушка отдаётся копией: изменения результата не портят следующие ответы.
func TestGetSeries_MockIsCopied(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, mockClient, mockCache, _ := newTestUseCase(ctrl)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(2)
	mockClient.EXPECT().Records(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrNoData).Times(2)

	first, err := uc.GetSeries(context.Background(), "wind", domain.EIAOptions{})
	require.NoError(t, err)
	first.Data[0].Value = -1

	second, err := uc.GetSeries(context.Background(), "wind", domain.EIAOptions{})
	require.NoError(t, err)
	assert.Equal(t, 38500.0, second.Data[0].Value)
}

func TestGetSeries_InvalidArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newTestUseCase(ctrl)

	_, err := uc.GetSeries(context.Background(), "geothermal", domain.EIAOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "electricity")

	_, err = uc.GetSeries(context.Background(), "coal", domain.EIAOptions{Frequency: "fortnightly"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}
