package census

import (
	"log/slog"
	"time"

	"govdataviz/internal/ports"
	"govdataviz/internal/usecase/fetcher"
)

const (
	dataTTL      = time.Hour
	variablesTTL = 24 * time.Hour
)

// DefaultPopulationLimit — сколько штатов отдаёт GetPopulationByState без явного лимита.
const DefaultPopulationLimit = 10

// UseCase — данные Census Bureau. Запросы идут к прошлому календарному году.
type UseCase struct {
	client  ports.ICensusClient
	fetcher *fetcher.Fetcher
	log     *slog.Logger
	now     func() time.Time
}

// New создаёт юзкейс Census.
func New(client ports.ICensusClient, f *fetcher.Fetcher, log *slog.Logger) *UseCase {
	return &UseCase{client: client, fetcher: f, log: log, now: time.Now}
}

// dataYear — год данных: предыдущий календарный.
func (u *UseCase) dataYear() int {
	return u.now().Year() - 1
}
