package click

import (
	"context"
	"fmt"

	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

var _ ports.IFetchAnalytics = (*FetchEventWriter)(nil)

const fetchEventsTable = "fetch_events"

// FetchEventWriter пишет события обращений к внешним API в ClickHouse (GROUP BY source, method, по времени).
type FetchEventWriter struct {
	db    *Client
	table string
}

// NewFetchEventWriter создаёт писатель событий.
func NewFetchEventWriter(db *Client) *FetchEventWriter {
	database := db.database
	if database == "" {
		database = "default"
	}
	return &FetchEventWriter{db: db, table: database + "." + fetchEventsTable}
}

// EnsureTable создаёт таблицу событий, если её ещё нет. Вызови один раз при старте приложения.
func (w *FetchEventWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			source LowCardinality(String),
			method LowCardinality(String),
			cache_key String,
			status LowCardinality(String),
			duration_ms Int64,
			error String,
			fetched_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (source, method, fetched_at)
		PARTITION BY toYYYYMM(fetched_at)`,
		w.table,
	)
	if _, err := w.db.DB().ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create %s: %w", w.table, err)
	}
	return nil
}

// WriteFetchEvent пишет одно событие.
func (w *FetchEventWriter) WriteFetchEvent(ctx context.Context, ev domain.FetchEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (source, method, cache_key, status, duration_ms, error, fetched_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		w.table,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Source, ev.Method, ev.Key, ev.Status, ev.DurationMs, ev.Error, ev.FetchedAt)
	if err != nil {
		return fmt.Errorf("insert fetch event: %w", err)
	}
	return nil
}
