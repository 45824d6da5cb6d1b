package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"govdataviz/internal/app"
	"govdataviz/internal/infrastructure/filecache"
)

func run(t *testing.T, c *filecache.Cache, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd(func(context.Context) (app.CacheStore, func() error, error) {
		return c, func() error { return nil }, nil
	})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestCachectl(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := filecache.New(filecache.Config{File: filepath.Join(t.TempDir(), "cache.json")}, log,
		filecache.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "bls:getSeries:{}", []byte(`{"id":"LNS14000000"}`), time.Hour))
	require.NoError(t, c.Set(ctx, "fred:search:{}", []byte(`[1,2]`), time.Minute))

	t.Run("get существующего ключа", func(t *testing.T) {
		out, err := run(t, c, "get", "bls:getSeries:{}")
		require.NoError(t, err)
		assert.Equal(t, "{\"id\":\"LNS14000000\"}\n", out)
	})

	t.Run("get отсутствующего ключа", func(t *testing.T) {
		_, err := run(t, c, "get", "nope")
		assert.Error(t, err)
	})

	t.Run("keys", func(t *testing.T) {
		out, err := run(t, c, "keys")
		require.NoError(t, err)
		assert.Equal(t, "bls:getSeries:{}\nfred:search:{}\n", out)
	})

	t.Run("purge удаляет просроченные", func(t *testing.T) {
		now = now.Add(2 * time.Minute)
		out, err := run(t, c, "purge")
		require.NoError(t, err)
		assert.Equal(t, "purged 1 expired entries\n", out)
	})

	t.Run("exists и del", func(t *testing.T) {
		out, err := run(t, c, "exists", "bls:getSeries:{}")
		require.NoError(t, err)
		assert.Equal(t, "true\n", out)

		_, err = run(t, c, "del", "bls:getSeries:{}")
		require.NoError(t, err)

		out, err = run(t, c, "exists", "bls:getSeries:{}")
		require.NoError(t, err)
		assert.Equal(t, "false\n", out)
	})

	t.Run("неверное число аргументов", func(t *testing.T) {
		_, err := run(t, c, "get")
		assert.Error(t, err)
	})
}
