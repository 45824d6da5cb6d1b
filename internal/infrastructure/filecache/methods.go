package filecache

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Get возвращает значение по ключу. Просроченная запись удаляется из файла и считается промахом.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return nil, false, err
	}
	e, ok := data[key]
	if !ok {
		return nil, false, nil
	}
	if c.expired(e) {
		delete(data, key)
		if err := c.save(data); err != nil {
			c.log.Warn("cache: drop expired entry failed", "key", key, "error", err)
		}
		return nil, false, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, e.Value); err != nil {
		return nil, false, fmt.Errorf("cache get %q: %w", key, err)
	}
	return buf.Bytes(), true, nil
}

// Set сохраняет значение на ttl. ttl <= 0 заменяется на DefaultTTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !json.Valid(value) {
		return fmt.Errorf("cache set %q: value is not valid json", key)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return err
	}
	data[key] = entry{Value: value, Expires: c.now().Add(ttl).UnixMilli()}
	return c.save(data)
}

// Delete удаляет ключ. Отсутствующий ключ — не ошибка.
func (c *Cache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return c.save(data)
}

// Exists сообщает, есть ли по ключу непросроченная запись. Файл не меняет.
func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return false, err
	}
	e, ok := data[key]
	return ok && !c.expired(e), nil
}

// Keys возвращает отсортированный список непросроченных ключей.
func (c *Cache) Keys(ctx context.Context) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(data))
	for k, e := range data {
		if !c.expired(e) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Purge удаляет все просроченные записи и возвращает их количество.
func (c *Cache) Purge(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.load()
	if err != nil {
		return 0, err
	}
	removed := 0
	for k, e := range data {
		if c.expired(e) {
			delete(data, k)
			removed++
		}
	}
	if removed == 0 {
		return 0, nil
	}
	return removed, c.save(data)
}

func (c *Cache) expired(e entry) bool {
	return c.now().UnixMilli() >= e.Expires
}

// load читает файл целиком. Отсутствующий или битый файл — пустой кэш.
func (c *Cache) load() (map[string]entry, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]entry{}, nil
		}
		return nil, fmt.Errorf("cache read %s: %w", c.path, err)
	}
	data := map[string]entry{}
	if err := json.Unmarshal(raw, &data); err != nil {
		c.log.Warn("cache: corrupt file, starting empty", "path", c.path, "error", err)
		return map[string]entry{}, nil
	}
	return data, nil
}

// save пишет кэш во временный файл рядом и переименовывает его поверх основного.
func (c *Cache) save(data map[string]entry) error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cache mkdir %s: %w", dir, err)
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("cache temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("cache write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cache close: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("cache rename: %w", err)
	}
	return nil
}
