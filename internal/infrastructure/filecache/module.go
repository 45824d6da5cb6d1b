package filecache

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"govdataviz/internal/ports"
)

var _ ports.ICache = (*Cache)(nil)

// DefaultTTL — срок жизни записи, если ttl не задан.
const DefaultTTL = time.Hour

// Config — настройки файлового кэша. Переменные: GOVVIZ_CACHE_FILE.
type Config struct {
	File string `envconfig:"FILE" default:"./data/cache.json"`
}

// entry — запись файла кэша. Expires — unix-время в миллисекундах.
type entry struct {
	Value   json.RawMessage `json:"value"`
	Expires int64           `json:"expires"`
}

// Cache — кэш ключ/значение с TTL, целиком хранящийся в одном JSON-файле.
// Каждая операция перечитывает файл, изменяющие операции переписывают его целиком.
type Cache struct {
	path string
	log  *slog.Logger
	now  func() time.Time
	mu   sync.Mutex
}

// Option настраивает Cache.
type Option func(*Cache)

// WithClock подменяет источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New создаёт кэш поверх файла cfg.File. Файл и каталог создаются при первой записи.
func New(cfg Config, log *slog.Logger, opts ...Option) *Cache {
	c := &Cache{path: cfg.File, log: log, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Path возвращает путь к файлу кэша.
func (c *Cache) Path() string {
	return c.path
}
