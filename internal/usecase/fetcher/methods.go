package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"govdataviz/internal/domain"
)

// Cached возвращает значение из кэша по req.Key или вызывает fetch, сохраняет результат на req.TTL и возвращает его.
// Результат всегда декодируется из тех же байтов, что легли в кэш, поэтому повторные
// запросы в пределах TTL отдают идентичные данные. Ошибки кэша не роняют запрос.
func Cached[T any](ctx context.Context, f *Fetcher, req Request, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if raw, ok := f.lookup(ctx, req); ok {
		var v T
		err := json.Unmarshal(raw, &v)
		if err == nil {
			return v, nil
		}
		f.log.Warn("cache decode failed, refetching", "key", req.Key, "error", err)
	}

	// Общий запрос не зависит от отмены контекста первого вызывающего: его результат ждут остальные.
	ch := f.group.DoChan(req.Key, func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		start := f.now()
		v, err := fetch(fctx)
		f.record(fctx, req, start, err)
		if err != nil {
			return nil, err
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%s %s: encode: %w", req.Source, req.Method, err)
		}
		if err := f.cache.Set(fctx, req.Key, raw, req.TTL); err != nil {
			f.log.Warn("cache set failed", "key", req.Key, "error", err)
		}
		return raw, nil
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		return zero, ctx.Err()
	}
	if res.Err != nil {
		return zero, res.Err
	}
	if res.Shared {
		f.log.Debug("fetch shared", "key", req.Key)
	}

	var v T
	if err := json.Unmarshal(res.Val.([]byte), &v); err != nil {
		return zero, fmt.Errorf("%s %s: decode: %w", req.Source, req.Method, err)
	}
	return v, nil
}

func (f *Fetcher) lookup(ctx context.Context, req Request) ([]byte, bool) {
	raw, found, err := f.cache.Get(ctx, req.Key)
	if err != nil {
		f.log.Warn("cache get failed", "key", req.Key, "error", err)
		cacheRequestsTotal.WithLabelValues(req.Source, "miss").Inc()
		return nil, false
	}
	if !found {
		cacheRequestsTotal.WithLabelValues(req.Source, "miss").Inc()
		return nil, false
	}
	cacheRequestsTotal.WithLabelValues(req.Source, "hit").Inc()
	return raw, true
}

// record пишет событие обращения к API в журнал и публикует в брокер. Сбои только логируются.
func (f *Fetcher) record(ctx context.Context, req Request, start time.Time, fetchErr error) {
	ev := domain.FetchEvent{
		Source:     req.Source,
		Method:     req.Method,
		Key:        req.Key,
		Status:     domain.FetchStatusOK,
		DurationMs: f.now().Sub(start).Milliseconds(),
		FetchedAt:  start.UTC(),
	}
	if fetchErr != nil {
		ev.Status = domain.FetchStatusError
		ev.Error = fetchErr.Error()
		f.log.Error("upstream fetch failed", "source", req.Source, "method", req.Method, "error", fetchErr)
	} else {
		f.log.Info("upstream fetched", "source", req.Source, "method", req.Method, "duration_ms", ev.DurationMs)
	}

	if err := f.repo.SaveFetch(ctx, ev); err != nil {
		f.log.Warn("fetch log save", "key", req.Key, "error", err)
	}
	value, err := json.Marshal(ev)
	if err != nil {
		f.log.Warn("fetch event encode", "error", err)
		return
	}
	if err := f.producer.Send(ctx, []byte(req.Source), value); err != nil {
		f.log.Warn("broker send", "key", req.Key, "error", err)
	}
}
