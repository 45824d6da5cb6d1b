package fred

import (
	"log/slog"
	"time"

	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/fetcher"
)

const cacheTTL = time.Hour

// UseCase — данные FRED: наблюдения рядов и поиск.
type UseCase struct {
	client  ports.IFREDClient
	fetcher *fetcher.Fetcher
	log     *slog.Logger
}

// New создаёт юзкейс FRED.
func New(client ports.IFREDClient, f *fetcher.Fetcher, log *slog.Logger) *UseCase {
	return &UseCase{client: client, fetcher: f, log: log}
}
