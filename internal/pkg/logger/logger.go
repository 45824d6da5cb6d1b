package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config — настройки логгера. Переменные: GOVVIZ_LOG_LEVEL, GOVVIZ_LOG_FILE, GOVVIZ_LOG_FORMAT.
type Config struct {
	Level  string `envconfig:"LEVEL" default:"info"`
	File   string `envconfig:"FILE" default:"app.log"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// logWriter открывает файл логов и возвращает writer в файл + stderr.
// Пустое имя файла или ошибка открытия — только stderr.
func logWriter(name string) io.Writer {
	if name == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stderr
	}
	return io.MultiWriter(f, os.Stderr)
}

// ParseLevel переводит строку (debug, info, warn, error) в slog.Level. Неизвестное значение — Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер по конфигу: текстовый (или json) вывод в файл и stderr.
func New(cfg Config) *slog.Logger {
	return NewWithWriter(cfg, logWriter(cfg.File))
}

// NewWithWriter — то же, что New, но пишет в переданный writer.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
