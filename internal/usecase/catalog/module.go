package catalog

import (
	"log/slog"

	"govdataviz/internal/ports"
)

// Лимиты выдачи.
const (
	DefaultSearchLimit  = 20
	MaxSearchLimit      = 100
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// UseCase — справочная часть /api/data: источники, поиск рядов, журнал обращений и сохранённые снимки.
type UseCase struct {
	fred      ports.IFREDUseCase
	fetchLog  ports.IFetchLogRepository
	datasets  ports.IDatasetRepository
	available map[string]bool
	log       *slog.Logger
}

// New создаёт юзкейс каталога. available — какие источники настроены (есть ключ или ключ не нужен).
func New(fred ports.IFREDUseCase, fetchLog ports.IFetchLogRepository, datasets ports.IDatasetRepository, available map[string]bool, log *slog.Logger) *UseCase {
	return &UseCase{fred: fred, fetchLog: fetchLog, datasets: datasets, available: available, log: log}
}
