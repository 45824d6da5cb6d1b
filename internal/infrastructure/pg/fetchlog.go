package pg

import (
	"context"
	"fmt"
	"log/slog"

	"govdataviz/internal/domain"
	"govdataviz/internal/ports"
)

var _ ports.IFetchLogRepository = (*FetchLogRepo)(nil)

// FetchLogRepo реализует ports.IFetchLogRepository для PostgreSQL.
type FetchLogRepo struct {
	db  *DB
	log *slog.Logger
}

// NewFetchLogRepo возвращает журнал обращений к внешним API.
func NewFetchLogRepo(db *DB, log *slog.Logger) *FetchLogRepo {
	return &FetchLogRepo{db: db, log: log}
}

// SaveFetch сохраняет событие в журнал.
func (r *FetchLogRepo) SaveFetch(ctx context.Context, ev domain.FetchEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO fetch_log (source, method, cache_key, status, duration_ms, error, fetched_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ev.Source, ev.Method, ev.Key, ev.Status, ev.DurationMs, ev.Error, ev.FetchedAt)
	if err != nil {
		r.log.Debug("SaveFetch failed", "error", err)
		return fmt.Errorf("insert fetch_log: %w", err)
	}
	return nil
}

// RecentFetches возвращает последние limit событий (новые сначала). source пустой — все источники.
func (r *FetchLogRepo) RecentFetches(ctx context.Context, source string, limit int) ([]domain.FetchEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, method, cache_key, status, duration_ms, error, fetched_at
		 FROM fetch_log
		 WHERE $1::text = '' OR source = $1
		 ORDER BY fetched_at DESC, id DESC
		 LIMIT $2`, source, limit)
	if err != nil {
		r.log.Debug("RecentFetches failed", "error", err)
		return nil, fmt.Errorf("select fetch_log: %w", err)
	}
	defer rows.Close()

	list := []domain.FetchEvent{}
	for rows.Next() {
		var ev domain.FetchEvent
		if err := rows.Scan(&ev.ID, &ev.Source, &ev.Method, &ev.Key, &ev.Status, &ev.DurationMs, &ev.Error, &ev.FetchedAt); err != nil {
			return nil, fmt.Errorf("scan fetch_log: %w", err)
		}
		list = append(list, ev)
	}
	return list, rows.Err()
}

// Ping проверяет доступность БД (readiness).
func (r *FetchLogRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
