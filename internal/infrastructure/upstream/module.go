package upstream

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultTimeout — таймаут запроса к внешнему API по умолчанию.
const DefaultTimeout = 30 * time.Second

// Client — HTTP-клиент к одному внешнему JSON API. Источник (bls, fred, ...) попадает в метрики и логи.
type Client struct {
	http   *http.Client
	source string
	log    *slog.Logger
}

// New создаёт клиент с таймаутом timeout (<= 0 — DefaultTimeout).
func New(source string, timeout time.Duration, log *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}, source: source, log: log}
}

// Source возвращает имя источника клиента.
func (c *Client) Source() string {
	return c.source
}

// RequestOption настраивает запрос перед отправкой.
type RequestOption func(*http.Request)

// WithHeader выставляет заголовок запроса.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}
