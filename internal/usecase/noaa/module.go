package noaa

import (
	"log/slog"
	"time"

	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/fetcher"
)

const (
	dataTTL     = 4 * time.Hour
	datasetsTTL = 24 * time.Hour
)

// UseCase — климатические данные NOAA CDO.
type UseCase struct {
	client  ports.INOAAClient
	fetcher *fetcher.Fetcher
	log     *slog.Logger
}

// New создаёт юзкейс NOAA.
func New(client ports.INOAAClient, f *fetcher.Fetcher, log *slog.Logger) *UseCase {
	return &UseCase{client: client, fetcher: f, log: log}
}
