package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"
	"encoding/json"

	"govdataviz/internal/domain"
)

// IBLSUseCase — ряды Bureau of Labor Statistics.
type IBLSUseCase interface {
	GetSeries(ctx context.Context, seriesID string, opts domain.BLSOptions) (*domain.TimeSeries, error)
	GetMultipleSeries(ctx context.Context, seriesIDs []string, opts domain.BLSOptions) ([]domain.TimeSeries, error)
}

// IFREDUseCase — данные Federal Reserve Economic Data.
type IFREDUseCase interface {
	GetSeriesObservations(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) (json.RawMessage, error)
	GetObservationPoints(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) ([]domain.Point, error)
	SearchSeries(ctx context.Context, opts domain.FREDSearchOptions) (json.RawMessage, error)
}

// ICensusUseCase — данные Census Bureau.
type ICensusUseCase interface {
	GetData(ctx context.Context, opts domain.CensusDataOptions) (json.RawMessage, error)
	GetVariables(ctx context.Context, dataset, group string) (json.RawMessage, error)
	GetPopulationByState(ctx context.Context, limit int) ([]domain.StatePopulation, error)
}

// IEIAUseCase — энергетические ряды EIA. При недоступности API возвращает заглушку (source = mock).
type IEIAUseCase interface {
	GetSeries(ctx context.Context, dataType string, opts domain.EIAOptions) (*domain.EIASeries, error)
}

// INOAAUseCase — климатические данные NOAA.
type INOAAUseCase interface {
	GetTemperatureData(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error)
	GetPrecipitationData(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error)
	GetClimateExtremes(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error)
	GetDatasets(ctx context.Context) ([]domain.NOAADataset, error)
}

// IChartUseCase — сборка конфигурации графика и выгрузка в изображение.
type IChartUseCase interface {
	GenerateConfig(ctx context.Context, chartType domain.ChartType, data json.RawMessage, opts domain.ChartRequestOptions) (*domain.ChartOptions, error)
	Export(ctx context.Context, cfg domain.ChartOptions, opts domain.ExportOptions) ([]byte, error)
}

// ICatalogUseCase — список источников, поиск, журнал обращений и сохранённые ряды.
type ICatalogUseCase interface {
	Sources(ctx context.Context) []domain.SourceInfo
	Search(ctx context.Context, query, source string, limit int) ([]domain.CatalogEntry, error)
	History(ctx context.Context, source string, limit int) ([]domain.FetchEvent, error)
	Datasets(ctx context.Context, source string) ([]domain.TimeSeries, error)
	Dataset(ctx context.Context, source, id string) (*domain.TimeSeries, error)
}

// IFetchEventHandler — обработка событий из топика fetch-событий (консьюмер Kafka).
type IFetchEventHandler interface {
	HandleFetchEvent(ctx context.Context, ev domain.FetchEvent) error
}
