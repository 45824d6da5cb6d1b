package eia

import (
	"context"

	"govdataviz/internal/domain"
	"govdataviz/internal/usecase/fetcher"
)

// GetSeries возвращает ряд набора dataType, точки от старых к новым.
// Неизвестный dataType или частота — ErrInvalidArgument. Любая ошибка API — заглушка набора.
func (u *UseCase) GetSeries(ctx context.Context, dataType string, opts domain.EIAOptions) (*domain.EIASeries, error) {
	ds, err := domain.LookupEIADataset(dataType)
	if err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	req := fetcher.Request{
		Source: domain.SourceEIA,
		Method: ds.Key,
		Key:    fetcher.Key(domain.SourceEIA, ds.Key, opts),
		TTL:    cacheTTL,
	}
	series, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (domain.EIASeries, error) {
		recs, err := u.client.Records(ctx, ds, opts)
		if err != nil {
			return domain.EIASeries{}, err
		}
		s := toSeries(ds, opts, recs)
		u.snapshot(ctx, s)
		return s, nil
	})
	if err != nil {
		u.log.Warn("eia unavailable, serving mock data", "dataset", ds.Key, "error", err)
		return ds.MockSeries(), nil
	}
	return &series, nil
}

// toSeries собирает ряд из записей EIA. Записи приходят от новых к старым.
func toSeries(ds domain.EIADataset, opts domain.EIAOptions, recs []domain.EIARecord) domain.EIASeries {
	data := make([]domain.EIADataPoint, len(recs))
	last := len(recs) - 1
	for i, r := range recs {
		v, _ := domain.ParseNumericValue(r.Value)
		data[last-i] = domain.EIADataPoint{Period: r.Period, Value: v}
	}
	return domain.EIASeries{
		SeriesID:    ds.SeriesID,
		Name:        ds.Name,
		Units:       ds.Units,
		Frequency:   opts.Frequency,
		Data:        data,
		Description: ds.Description,
		Copyright:   domain.EIACopyright,
		Source:      domain.SourceEIA,
	}
}

func (u *UseCase) snapshot(ctx context.Context, s domain.EIASeries) {
	ts := domain.TimeSeries{
		ID:          s.SeriesID,
		Title:       s.Name,
		Description: s.Description,
		Units:       s.Units,
		Frequency:   s.Frequency,
		Source:      domain.SourceEIA,
		LastUpdated: u.now().UTC(),
		Data:        make([]domain.DataPoint, len(s.Data)),
	}
	for i, p := range s.Data {
		ts.Data[i] = domain.DataPoint{Date: p.Period, Value: p.Value}
	}
	if err := u.datasets.SaveSeries(ctx, ts); err != nil {
		u.log.Warn("dataset snapshot save", "source", domain.SourceEIA, "id", ts.ID, "error", err)
	}
}
