package fetcher

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"govdataviz/internal/ports"
)

// Key формирует ключ кэша "источник:метод:часть:часть...". Строки идут как есть, остальное — JSON.
func Key(source, method string, parts ...any) string {
	var b strings.Builder
	b.WriteString(source)
	b.WriteByte(':')
	b.WriteString(method)
	for _, p := range parts {
		b.WriteByte(':')
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case []string:
			b.WriteString(strings.Join(v, ","))
		default:
			raw, err := json.Marshal(v)
			if err != nil {
				fmt.Fprintf(&b, "%v", v)
				continue
			}
			b.Write(raw)
		}
	}
	return b.String()
}

// Fetcher — кэширование ответов внешних API: проверка кэша, запрос при промахе, запись обратно.
// Одинаковые одновременные промахи схлопываются в один запрос. Каждый запрос к API
// фиксируется событием в журнале и в брокере.
type Fetcher struct {
	cache    ports.ICache
	repo     ports.IFetchLogRepository
	producer ports.IProducer
	log      *slog.Logger
	group    singleflight.Group
	now      func() time.Time
}

// New создаёт Fetcher.
func New(cache ports.ICache, repo ports.IFetchLogRepository, producer ports.IProducer, log *slog.Logger) *Fetcher {
	return &Fetcher{cache: cache, repo: repo, producer: producer, log: log, now: time.Now}
}

// Request — описание одного обращения: источник и метод (для метрик и журнала), ключ и TTL.
type Request struct {
	Source string
	Method string
	Key    string
	TTL    time.Duration
}
