package bls

import (
	"log/slog"
	"time"

	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/fetcher"
)

// cacheTTL — срок жизни рядов BLS в кэше.
const cacheTTL = time.Hour

// UseCase — ряды Bureau of Labor Statistics в виде TimeSeries.
type UseCase struct {
	client   ports.IBLSClient
	fetcher  *fetcher.Fetcher
	datasets ports.IDatasetRepository
	log      *slog.Logger
	now      func() time.Time
}

// New создаёт юзкейс BLS.
func New(client ports.IBLSClient, f *fetcher.Fetcher, datasets ports.IDatasetRepository, log *slog.Logger) *UseCase {
	return &UseCase{client: client, fetcher: f, datasets: datasets, log: log, now: time.Now}
}
