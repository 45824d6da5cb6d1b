package ports

//go:generate mockgen -source=repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"govdataviz/internal/domain"
)

// IFetchLogRepository — журнал обращений к внешним API.
type IFetchLogRepository interface {
	SaveFetch(ctx context.Context, ev domain.FetchEvent) error
	RecentFetches(ctx context.Context, source string, limit int) ([]domain.FetchEvent, error)
	Ping(ctx context.Context) error
}

// IDatasetRepository — хранилище снимков нормализованных временных рядов.
type IDatasetRepository interface {
	SaveSeries(ctx context.Context, ts domain.TimeSeries) error
	ListSeries(ctx context.Context, source string) ([]domain.TimeSeries, error)
	GetSeries(ctx context.Context, source, id string) (*domain.TimeSeries, error)
}
