package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"govdataviz/internal/domain"
)

// IFetchAnalytics — запись событий обращения к внешним API в аналитическое хранилище (ClickHouse).
type IFetchAnalytics interface {
	WriteFetchEvent(ctx context.Context, ev domain.FetchEvent) error
}
