package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"govdataviz/internal/domain"
)

// Get выполняет GET rawURL с параметрами query и возвращает тело ответа.
// Статус вне 2xx — ошибка, оборачивающая domain.ErrUpstream.
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values, opts ...RequestOption) ([]byte, error) {
	if len(query) > 0 {
		sep := "?"
		if strings.Contains(rawURL, "?") {
			sep = "&"
		}
		rawURL += sep + query.Encode()
	}
	return c.do(ctx, http.MethodGet, rawURL, nil, opts...)
}

// PostJSON отправляет body в виде JSON и возвращает тело ответа.
func (c *Client) PostJSON(ctx context.Context, rawURL string, body any, opts ...RequestOption) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", c.source, err)
	}
	opts = append([]RequestOption{WithHeader("Content-Type", "application/json")}, opts...)
	return c.do(ctx, http.MethodPost, rawURL, bytes.NewReader(encoded), opts...)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, opts ...RequestOption) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("%s: build request: %w", c.source, err)
	}
	req.Header.Set("Accept", "application/json")
	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	upstreamRequestDuration.WithLabelValues(c.source).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequestsTotal.WithLabelValues(c.source, "error").Inc()
		c.log.Warn("upstream request failed", "source", c.source, "method", method, "error", err)
		return nil, fmt.Errorf("%s: %w: %v", c.source, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	upstreamRequestsTotal.WithLabelValues(c.source, strconv.Itoa(resp.StatusCode)).Inc()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w: %v", c.source, domain.ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("upstream non-2xx", "source", c.source, "status", resp.StatusCode, "body", SummarizeBody(respBody))
		return nil, fmt.Errorf("%s: %w: status %d: %s", c.source, domain.ErrUpstream, resp.StatusCode, SummarizeBody(respBody))
	}
	c.log.Debug("upstream request", "source", c.source, "method", method, "status", resp.StatusCode, "latency_ms", time.Since(start).Milliseconds())
	return respBody, nil
}

// SummarizeBody — короткая выжимка тела ответа для сообщений об ошибках.
func SummarizeBody(body []byte) string {
	s := strings.TrimSpace(string(body))
	if s == "" {
		return "empty body"
	}
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
