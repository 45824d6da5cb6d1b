package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
	"govdataviz/internal/usecase/fetcher"
)

// GetSeriesObservations возвращает ответ /series/observations без изменений.
func (u *UseCase) GetSeriesObservations(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) (json.RawMessage, error) {
	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, fmt.Errorf("%w: series id is required", domain.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	req := fetcher.Request{
		Source: domain.SourceFRED,
		Method: "series",
		Key:    fetcher.Key(domain.SourceFRED, "series", seriesID, opts),
		TTL:    cacheTTL,
	}
	raw, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (json.RawMessage, error) {
		return u.client.Observations(ctx, seriesID, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch fred series %s: %w", seriesID, err)
	}
	return raw, nil
}

// GetObservationPoints возвращает наблюдения ряда как точки. Пропуски FRED (".") отбрасываются.
func (u *UseCase) GetObservationPoints(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) ([]domain.Point, error) {
	raw, err := u.GetSeriesObservations(ctx, seriesID, opts)
	if err != nil {
		return nil, err
	}
	obs := gjson.GetBytes(raw, "observations")
	if !obs.IsArray() {
		return nil, fmt.Errorf("fred series %s: %w: observations is missing", seriesID, domain.ErrMalformedResponse)
	}
	out := make([]domain.Point, 0, len(obs.Array()))
	for _, o := range obs.Array() {
		v, ok := domain.ParseNumericValue(o.Get("value").String())
		if !ok {
			continue
		}
		out = append(out, domain.Point{Date: o.Get("date").String(), Value: v})
	}
	return out, nil
}

// SearchSeries ищет ряды по тексту.
func (u *UseCase) SearchSeries(ctx context.Context, opts domain.FREDSearchOptions) (json.RawMessage, error) {
	opts.SearchText = strings.TrimSpace(opts.SearchText)
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	req := fetcher.Request{
		Source: domain.SourceFRED,
		Method: "search",
		Key:    fetcher.Key(domain.SourceFRED, "search", opts),
		TTL:    cacheTTL,
	}
	raw, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (json.RawMessage, error) {
		return u.client.Search(ctx, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("search fred series: %w", err)
	}
	return raw, nil
}
