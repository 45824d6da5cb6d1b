package chart

import "log/slog"

// Значения по умолчанию для конфигурации графика.
const (
	defaultTitle  = "Data Visualization"
	defaultWidth  = 800
	defaultHeight = 400
	defaultTheme  = "light"
)

// UseCase — сборка конфигурации графика для фронтенда и выгрузка графика в svg/png/jpg.
type UseCase struct {
	log *slog.Logger
}

// New создаёт юзкейс графиков.
func New(log *slog.Logger) *UseCase {
	return &UseCase{log: log}
}
