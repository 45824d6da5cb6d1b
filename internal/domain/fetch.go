package domain

import "time"

// Статусы обращения к внешнему API.
const (
	FetchStatusOK    = "ok"
	FetchStatusError = "error"
)

// FetchEvent — запись об одном обращении к внешнему API (промах кэша).
// Пишется в журнал (PostgreSQL), публикуется в брокер и попадает в аналитику.
type FetchEvent struct {
	ID         int64     `json:"id,omitempty"`
	Source     string    `json:"source"`
	Method     string    `json:"method"`
	Key        string    `json:"key"`
	Status     string    `json:"status"`
	DurationMs int64     `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
	FetchedAt  time.Time `json:"fetched_at"`
}
