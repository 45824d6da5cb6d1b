// Package noop — заглушки для выключенной инфраструктуры (GOVVIZ_*_ENABLED=false).
package noop

import (
	"context"
	"fmt"

	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

var (
	_ ports.IProducer           = Producer{}
	_ ports.IFetchLogRepository = FetchLog{}
	_ ports.IDatasetRepository  = Datasets{}
	_ ports.IFetchAnalytics     = Analytics{}
)

// Producer не отправляет сообщения.
type Producer struct{}

// Send ничего не делает.
func (Producer) Send(context.Context, []byte, []byte) error { return nil }

// FetchLog не хранит журнал обращений.
type FetchLog struct{}

// SaveFetch ничего не делает.
func (FetchLog) SaveFetch(context.Context, domain.FetchEvent) error { return nil }

// RecentFetches всегда возвращает пустой список.
func (FetchLog) RecentFetches(context.Context, string, int) ([]domain.FetchEvent, error) {
	return []domain.FetchEvent{}, nil
}

// Ping всегда успешен.
func (FetchLog) Ping(context.Context) error { return nil }

// Datasets не хранит снимки рядов.
type Datasets struct{}

// SaveSeries ничего не делает.
func (Datasets) SaveSeries(context.Context, domain.TimeSeries) error { return nil }

// ListSeries всегда возвращает пустой список.
func (Datasets) ListSeries(context.Context, string) ([]domain.TimeSeries, error) {
	return []domain.TimeSeries{}, nil
}

// GetSeries всегда возвращает domain.ErrNotFound.
func (Datasets) GetSeries(_ context.Context, source, id string) (*domain.TimeSeries, error) {
	return nil, fmt.Errorf("dataset %s/%s: %w", source, id, domain.ErrNotFound)
}

// Analytics не пишет события.
type Analytics struct{}

// WriteFetchEvent ничего не делает.
func (Analytics) WriteFetchEvent(context.Context, domain.FetchEvent) error { return nil }
