// cachectl — обслуживание кэша ответов внешних API (файлового или redis) из командной строки.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"govdataviz/internal/app"
)

func main() {
	root := newRootCmd(openFromEnv)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// openFromEnv открывает кэш по тому же конфигу (GOVVIZ_CACHE_*, GOVVIZ_REDIS_*), что и сервер.
func openFromEnv(ctx context.Context) (app.CacheStore, func() error, error) {
	cfg, err := app.LoadCfg()
	if err != nil {
		return nil, nil, err
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	opened, err := app.OpenCache(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return opened.Store, opened.Close, nil
}
