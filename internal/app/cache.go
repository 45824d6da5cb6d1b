package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"govdataviz/internal/infrastructure/filecache"
	"govdataviz/internal/infrastructure/redis"
	"govdataviz/internal/ports"
)

// CacheStore — кэш с операциями обслуживания (список ключей, очистка просроченных).
type CacheStore interface {
	ports.ICache
	Keys(ctx context.Context) ([]string, error)
	Purge(ctx context.Context) (int, error)
}

// OpenedCache — открытый кэш и, для redis, клиент (нужен для readiness и закрытия).
type OpenedCache struct {
	Store CacheStore
	Redis *redis.Client
}

// Close закрывает соединение с Redis, если оно есть.
func (o *OpenedCache) Close() error {
	if o.Redis == nil {
		return nil
	}
	return o.Redis.Close()
}

// OpenCache открывает кэш по GOVVIZ_CACHE_BACKEND: файловый (по умолчанию) или redis.
func OpenCache(ctx context.Context, cfg Config, log *slog.Logger) (*OpenedCache, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Cache.Backend)) {
	case "", CacheBackendFile:
		return &OpenedCache{Store: filecache.New(cfg.Cache.Config, log)}, nil
	case CacheBackendRedis:
		cli, err := redis.New(ctx, &cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return &OpenedCache{Store: redis.NewCache(cli, cfg.Redis.KeyPrefix, log), Redis: cli}, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
