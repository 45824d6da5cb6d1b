package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
)

// Sources возвращает список источников с признаком доступности.
func (u *UseCase) Sources(ctx context.Context) []domain.SourceInfo {
	return domain.Sources(func(id string) bool { return u.available[id] })
}

// Search ищет ряды во встроенном справочнике и, если источник FRED доступен, в поиске FRED.
// Ошибка FRED не роняет поиск: отдаются локальные результаты.
func (u *UseCase) Search(ctx context.Context, query, source string, limit int) ([]domain.CatalogEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query is required", domain.ErrInvalidArgument)
	}
	if source != "" && !knownSource(source) {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidArgument, source)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	limit = min(limit, MaxSearchLimit)

	results := domain.SearchCatalog(query, source, limit)
	if len(results) >= limit || (source != "" && source != domain.SourceFRED) || !u.available[domain.SourceFRED] {
		return results, nil
	}

	raw, err := u.fred.SearchSeries(ctx, domain.FREDSearchOptions{SearchText: query, Limit: limit})
	if err != nil {
		u.log.Warn("fred search failed, returning catalog matches only", "query", query, "error", err)
		return results, nil
	}

	seen := make(map[string]struct{}, len(results))
	for _, r := range results {
		seen[r.Source+":"+r.ID] = struct{}{}
	}
	gjson.GetBytes(raw, "seriess").ForEach(func(_, s gjson.Result) bool {
		id := s.Get("id").String()
		if _, ok := seen[domain.SourceFRED+":"+id]; ok || id == "" {
			return true
		}
		results = append(results, domain.CatalogEntry{
			ID:     id,
			Title:  s.Get("title").String(),
			Source: domain.SourceFRED,
			Units:  s.Get("units").String(),
		})
		return len(results) < limit
	})
	return results, nil
}

// History возвращает последние обращения к внешним API, новые сначала.
func (u *UseCase) History(ctx context.Context, source string, limit int) ([]domain.FetchEvent, error) {
	if source != "" && !knownSource(source) {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidArgument, source)
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	events, err := u.fetchLog.RecentFetches(ctx, source, limit)
	if err != nil {
		return nil, fmt.Errorf("recent fetches: %w", err)
	}
	return events, nil
}

// Datasets возвращает сохранённые снимки рядов; source пустой — все источники.
func (u *UseCase) Datasets(ctx context.Context, source string) ([]domain.TimeSeries, error) {
	if source != "" && !knownSource(source) {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidArgument, source)
	}
	list, err := u.datasets.ListSeries(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	return list, nil
}

// Dataset возвращает один сохранённый снимок ряда.
func (u *UseCase) Dataset(ctx context.Context, source, id string) (*domain.TimeSeries, error) {
	if !knownSource(source) {
		return nil, fmt.Errorf("%w: unknown source %q", domain.ErrInvalidArgument, source)
	}
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: dataset id is required", domain.ErrInvalidArgument)
	}
	ts, err := u.datasets.GetSeries(ctx, source, id)
	if err != nil {
		return nil, fmt.Errorf("get dataset %s/%s: %w", source, id, err)
	}
	return ts, nil
}

func knownSource(source string) bool {
	for _, s := range domain.Sources(nil) {
		if s.ID == source {
			return true
		}
	}
	return false
}
