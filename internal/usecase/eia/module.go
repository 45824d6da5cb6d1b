package eia

import (
	"log/slog"
	"time"

	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/fetcher"
)

const cacheTTL = 2 * time.Hour

// UseCase — энергетические ряды EIA. Ошибки API маскируются заглушкой с source = mock,
// заглушка в кэш не попадает.
type UseCase struct {
	client   ports.IEIAClient
	fetcher  *fetcher.Fetcher
	datasets ports.IDatasetRepository
	log      *slog.Logger
	now      func() time.Time
}

// New создаёт юзкейс EIA.
func New(client ports.IEIAClient, f *fetcher.Fetcher, datasets ports.IDatasetRepository, log *slog.Logger) *UseCase {
	return &UseCase{client: client, fetcher: f, datasets: datasets, log: log, now: time.Now}
}
