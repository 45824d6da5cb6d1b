package analytics

import (
	"log/slog"

	"govdataviz/internal/ports"
)

// UseCase — обработка событий обращений к внешним API, пришедших из брокера.
type UseCase struct {
	writer ports.IFetchAnalytics
	log    *slog.Logger
}

// New создаёт юзкейс аналитики.
func New(writer ports.IFetchAnalytics, log *slog.Logger) *UseCase {
	return &UseCase{writer: writer, log: log}
}
