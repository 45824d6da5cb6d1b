package census

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"govdataviz/internal/domain"
	"govdataviz/internal/usecase/fetcher"
)

// GetData возвращает таблицу Census как есть. Пустой dataset заменяется на acs/acs5.
// Год данных входит в ключ кэша.
func (u *UseCase) GetData(ctx context.Context, opts domain.CensusDataOptions) (json.RawMessage, error) {
	if opts.Dataset == "" {
		opts.Dataset = domain.CensusDatasetACS5
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	year := u.dataYear()
	req := fetcher.Request{
		Source: domain.SourceCensus,
		Method: "data",
		Key:    fetcher.Key(domain.SourceCensus, "data", year, opts.Dataset, opts),
		TTL:    dataTTL,
	}
	raw, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (json.RawMessage, error) {
		return u.client.Data(ctx, year, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch census data: %w", err)
	}
	return raw, nil
}

// GetVariables возвращает описание переменных набора (или одной группы).
func (u *UseCase) GetVariables(ctx context.Context, dataset, group string) (json.RawMessage, error) {
	dataset = strings.Trim(dataset, "/ ")
	if dataset == "" {
		return nil, fmt.Errorf("%w: dataset is required", domain.ErrInvalidArgument)
	}
	groupKey := group
	if groupKey == "" {
		groupKey = "all"
	}

	year := u.dataYear()
	req := fetcher.Request{
		Source: domain.SourceCensus,
		Method: "variables",
		Key:    fetcher.Key(domain.SourceCensus, "variables", year, dataset, groupKey),
		TTL:    variablesTTL,
	}
	raw, err := fetcher.Cached(ctx, u.fetcher, req, func(ctx context.Context) (json.RawMessage, error) {
		return u.client.Variables(ctx, year, dataset, group)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch census variables: %w", err)
	}
	return raw, nil
}

// GetPopulationByState возвращает население штатов (ACS 5-year) по убыванию, не больше limit.
func (u *UseCase) GetPopulationByState(ctx context.Context, limit int) ([]domain.StatePopulation, error) {
	if limit <= 0 {
		limit = DefaultPopulationLimit
	}
	raw, err := u.GetData(ctx, domain.CensusDataOptions{
		Dataset: domain.CensusDatasetACS5,
		Get:     "NAME," + domain.CensusVarTotalPopulation,
		For:     domain.CensusGeoAllStates,
	})
	if err != nil {
		return nil, err
	}
	table, err := domain.ParseCensusTable(raw)
	if err != nil {
		return nil, fmt.Errorf("census population: %w", err)
	}
	return domain.PopulationByState(table, domain.CensusVarTotalPopulation, limit)
}
