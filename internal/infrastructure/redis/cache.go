package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"govdataviz/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// DefaultTTL — срок жизни записи, если ttl не задан.
const DefaultTTL = time.Hour

// Cache реализует ports.ICache через Redis. Срок жизни записи держит сам Redis (SET ... EX).
type Cache struct {
	cli    *Client
	prefix string
	log    *slog.Logger
}

// NewCache возвращает кэш; все ключи хранятся с префиксом prefix.
func NewCache(cli *Client, prefix string, log *slog.Logger) *Cache {
	return &Cache{cli: cli, prefix: prefix, log: log}
}

// Get возвращает значение по ключу. Если ключа нет или срок истёк — found == false.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.cli.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return b, true, nil
}

// Set сохраняет значение на ttl (ttl <= 0 — DefaultTTL).
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := c.cli.Set(ctx, c.prefix+key, value, ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа не ошибка.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.cli.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// Exists сообщает, есть ли живой ключ.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.cli.Exists(ctx, c.prefix+key).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return n > 0, nil
}

// Keys возвращает живые ключи без префикса, отсортированные.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.cli.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), c.prefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(keys)
	return keys, nil
}

// Purge ничего не удаляет: просроченные ключи Redis убирает сам.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	return 0, nil
}
