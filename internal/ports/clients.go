package ports

//go:generate mockgen -source=clients.go -destination=../mocks/clients_mock.go -package=mocks

import (
	"context"
	"encoding/json"

	"govdataviz/internal/domain"
)

// IBLSClient — клиент BLS Public Data API v2.
type IBLSClient interface {
	FetchSeries(ctx context.Context, req domain.BLSRequest) (*domain.BLSResponse, error)
	HasKey() bool
}

// IFREDClient — клиент FRED API. Ответы отдаются как есть.
type IFREDClient interface {
	Observations(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) (json.RawMessage, error)
	Search(ctx context.Context, opts domain.FREDSearchOptions) (json.RawMessage, error)
	HasKey() bool
}

// ICensusClient — клиент Census Data API.
type ICensusClient interface {
	Data(ctx context.Context, year int, opts domain.CensusDataOptions) (json.RawMessage, error)
	Variables(ctx context.Context, year int, dataset, group string) (json.RawMessage, error)
	HasKey() bool
}

// IEIAClient — клиент EIA API v2.
type IEIAClient interface {
	Records(ctx context.Context, ds domain.EIADataset, opts domain.EIAOptions) ([]domain.EIARecord, error)
	HasKey() bool
}

// INOAAClient — клиент NOAA Climate Data Online v2.
type INOAAClient interface {
	Data(ctx context.Context, q domain.NOAAQuery) (*domain.NOAAData, error)
	Datasets(ctx context.Context) ([]domain.NOAADataset, error)
	HasKey() bool
}
