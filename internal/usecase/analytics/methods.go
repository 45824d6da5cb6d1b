package analytics

import (
	"context"
	"fmt"
	"time"

	"govdataviz/internal/domain"
)

// HandleFetchEvent пишет событие в аналитическое хранилище. События без источника отбрасываются.
func (u *UseCase) HandleFetchEvent(ctx context.Context, ev domain.FetchEvent) error {
	if ev.Source == "" || ev.Method == "" {
		u.log.Warn("skip fetch event without source or method", "key", ev.Key)
		return nil
	}
	if ev.FetchedAt.IsZero() {
		ev.FetchedAt = time.Now().UTC()
	}
	if err := u.writer.WriteFetchEvent(ctx, ev); err != nil {
		return fmt.Errorf("write fetch event %s:%s: %w", ev.Source, ev.Method, err)
	}
	u.log.Debug("fetch event stored", "source", ev.Source, "method", ev.Method, "status", ev.Status)
	return nil
}
