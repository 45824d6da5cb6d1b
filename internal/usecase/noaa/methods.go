package noaa

import (
	"context"
	"fmt"

	"govdataviz/internal/domain"
	"govdataviz/internal/usecase/fetcher"
)

// GetTemperatureData — наблюдения TAVG, TMAX, TMIN.
func (u *UseCase) GetTemperatureData(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error) {
	return u.data(ctx, "temperature", opts, func(q *domain.NOAAQuery) {
		q.DataTypeIDs = []string{domain.NOAATypeAvgTemp, domain.NOAATypeMaxTemp, domain.NOAATypeMinTemp}
	})
}

// GetPrecipitationData — наблюдения PRCP.
func (u *UseCase) GetPrecipitationData(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error) {
	return u.data(ctx, "precipitation", opts, func(q *domain.NOAAQuery) {
		q.DataTypeIDs = []string{domain.NOAATypePrecip}
	})
}

// GetClimateExtremes — TMAX, TMIN, PRCP из GHCND, новые первыми.
func (u *UseCase) GetClimateExtremes(ctx context.Context, opts domain.NOAAOptions) (*domain.NOAAData, error) {
	opts.DatasetID = domain.NOAADefaultDataset
	return u.data(ctx, "extremes", opts, func(q *domain.NOAAQuery) {
		q.DataTypeIDs = []string{domain.NOAATypeMaxTemp, domain.NOAATypeMinTemp, domain.NOAATypePrecip}
		q.SortField = "date"
		q.SortOrder = "desc"
	})
}

// GetDatasets — список наборов данных CDO.
func (u *UseCase) GetDatasets(ctx context.Context) ([]domain.NOAADataset, error) {
	req := fetcher.Request{
		Source: domain.SourceNOAA,
		Method: "datasets",
		Key:    fetcher.Key(domain.SourceNOAA, "datasets"),
		TTL:    datasetsTTL,
	}
	list, err := fetcher.Cached(ctx, u.fetcher, req, u.client.Datasets)
	if err != nil {
		return nil, fmt.Errorf("fetch noaa datasets: %w", err)
	}
	return list, nil
}

func (u *UseCase) data(ctx context.Context, method string, opts domain.NOAAOptions, shape func(*domain.NOAAQuery)) (*domain.NOAAData, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts = opts.WithDefaults()

	q := domain.NOAAQuery{
		DatasetID:  opts.DatasetID,
		LocationID: opts.LocationID,
		StartDate:  opts.StartDate,
		EndDate:    opts.EndDate,
	}
	shape(&q)

	req := fetcher.Request{
		Source: domain.SourceNOAA,
		Method: method,
		Key:    fetcher.Key(domain.SourceNOAA, method, opts),
		TTL:    dataTTL,
	}
	data, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (domain.NOAAData, error) {
		d, err := u.client.Data(ctx, q)
		if err != nil {
			return domain.NOAAData{}, err
		}
		return *d, nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch noaa %s data: %w", method, err)
	}
	return &data, nil
}
