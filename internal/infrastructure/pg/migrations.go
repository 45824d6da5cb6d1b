package pg

import (
	"context"
	"fmt"
)

const createFetchLogTable = `
CREATE TABLE IF NOT EXISTS fetch_log (
	id          BIGSERIAL PRIMARY KEY,
	source      VARCHAR(16) NOT NULL,
	method      VARCHAR(64) NOT NULL,
	cache_key   TEXT NOT NULL,
	status      VARCHAR(16) NOT NULL,
	duration_ms BIGINT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	fetched_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS fetch_log_source_fetched_at ON fetch_log (source, fetched_at DESC);
`

// Migrate создаёт таблицу fetch_log, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createFetchLogTable); err != nil {
		return fmt.Errorf("pg migrate: %w", err)
	}
	return nil
}
