package bls

import (
	"context"
	"fmt"
	"strings"

	"govdataviz/internal/domain"
	"govdataviz/internal/usecase/fetcher"
)

// GetSeries возвращает один ряд BLS, точки от старых к новым.
func (u *UseCase) GetSeries(ctx context.Context, seriesID string, opts domain.BLSOptions) (*domain.TimeSeries, error) {
	seriesID = strings.TrimSpace(seriesID)
	if seriesID == "" {
		return nil, fmt.Errorf("%w: series id is required", domain.ErrInvalidArgument)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	req := fetcher.Request{
		Source: domain.SourceBLS,
		Method: "series",
		Key:    fetcher.Key(domain.SourceBLS, "series", seriesID, opts),
		TTL:    cacheTTL,
	}
	ts, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (domain.TimeSeries, error) {
		list, err := u.fetch(ctx, []string{seriesID}, opts)
		if err != nil {
			return domain.TimeSeries{}, err
		}
		ts := list[0]
		ts.ID = seriesID
		return ts, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch bls series %s: %w", seriesID, err)
	}
	return &ts, nil
}

// GetMultipleSeries возвращает несколько рядов одним запросом (не больше BLSMaxSeriesPerRequest).
func (u *UseCase) GetMultipleSeries(ctx context.Context, seriesIDs []string, opts domain.BLSOptions) ([]domain.TimeSeries, error) {
	if len(seriesIDs) == 0 {
		return nil, fmt.Errorf("%w: seriesIds must be a non-empty array", domain.ErrInvalidArgument)
	}
	if len(seriesIDs) > domain.BLSMaxSeriesPerRequest {
		return nil, fmt.Errorf("%w: maximum %d series can be requested at once", domain.ErrInvalidArgument, domain.BLSMaxSeriesPerRequest)
	}
	for _, id := range seriesIDs {
		if strings.TrimSpace(id) == "" {
			return nil, fmt.Errorf("%w: series id must not be empty", domain.ErrInvalidArgument)
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	req := fetcher.Request{
		Source: domain.SourceBLS,
		Method: "multiple",
		Key:    fetcher.Key(domain.SourceBLS, "multiple", seriesIDs, opts),
		TTL:    cacheTTL,
	}
	list, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) ([]domain.TimeSeries, error) {
		return u.fetch(ctx, seriesIDs, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch bls series: %w", err)
	}
	return list, nil
}

// fetch запрашивает ряды, проверяет статус ответа и приводит их к TimeSeries. Ряды сохраняются снимками.
func (u *UseCase) fetch(ctx context.Context, seriesIDs []string, opts domain.BLSOptions) ([]domain.TimeSeries, error) {
	resp, err := u.client.FetchSeries(ctx, domain.BLSRequest{
		SeriesID:     seriesIDs,
		StartYear:    opts.StartYear,
		EndYear:      opts.EndYear,
		Calculations: opts.Calculations,
	})
	if err != nil {
		return nil, err
	}
	if resp.Status != domain.BLSStatusSucceeded {
		return nil, fmt.Errorf("%w: bls api error: %s", domain.ErrUpstream, strings.Join(resp.Message, ", "))
	}
	if len(resp.Results.Series) == 0 {
		return nil, fmt.Errorf("%w: no data found for series", domain.ErrNoData)
	}

	out := make([]domain.TimeSeries, 0, len(resp.Results.Series))
	for _, s := range resp.Results.Series {
		ts, err := u.toTimeSeries(s)
		if err != nil {
			return nil, err
		}
		if err := u.datasets.SaveSeries(ctx, ts); err != nil {
			u.log.Warn("dataset snapshot save", "source", domain.SourceBLS, "id", ts.ID, "error", err)
		}
		out = append(out, ts)
	}
	return out, nil
}

// toTimeSeries переводит ряд BLS в TimeSeries. BLS отдаёт точки от новых к старым, порядок разворачивается.
func (u *UseCase) toTimeSeries(s domain.BLSSeries) (domain.TimeSeries, error) {
	ts := domain.TimeSeries{
		ID:          s.SeriesID,
		Title:       s.SeriesID,
		Frequency:   domain.FrequencyMonthly,
		Source:      domain.SourceBLS,
		LastUpdated: u.now().UTC(),
		Data:        make([]domain.DataPoint, len(s.Data)),
	}
	if c := s.Catalog; c != nil {
		if c.SeriesTitle != "" {
			ts.Title = c.SeriesTitle
		}
		ts.Description = c.SurveyName
		ts.Units = c.MeasureDataType
		ts.SeasonallyAdjusted = c.SeasonallyAdjusted == "Seasonally Adjusted"
	}

	last := len(s.Data) - 1
	for i, p := range s.Data {
		date, err := domain.BLSPeriodToDate(p.Year, p.Period)
		if err != nil {
			return domain.TimeSeries{}, err
		}
		value, _ := domain.ParseNumericValue(p.Value)
		meta := map[string]any{"footnotes": p.Footnotes}
		if len(p.Calculations) > 0 {
			meta["calculations"] = p.Calculations
		}
		ts.Data[last-i] = domain.DataPoint{Date: date, Value: value, Label: p.PeriodName, Metadata: meta}
	}
	return ts, nil
}
