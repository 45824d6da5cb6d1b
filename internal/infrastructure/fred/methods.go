package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
)

// Observations запрашивает /series/observations и возвращает ответ как есть.
func (c *Client) Observations(ctx context.Context, seriesID string, opts domain.FREDObservationOptions) (json.RawMessage, error) {
	q := c.baseQuery()
	q.Set("series_id", seriesID)
	setIf(q, "observation_start", opts.ObservationStart)
	setIf(q, "observation_end", opts.ObservationEnd)
	setIf(q, "frequency", opts.Frequency)
	setIf(q, "units", opts.Units)

	body, err := c.http.Get(ctx, c.baseURL+"/series/observations", q)
	if err != nil {
		return nil, err
	}
	return checkPayload(body, "observations")
}

// Search запрашивает /series/search.
func (c *Client) Search(ctx context.Context, opts domain.FREDSearchOptions) (json.RawMessage, error) {
	q := c.baseQuery()
	q.Set("search_text", opts.SearchText)
	q.Set("limit", strconv.Itoa(opts.Limit))
	q.Set("offset", strconv.Itoa(opts.Offset))

	body, err := c.http.Get(ctx, c.baseURL+"/series/search", q)
	if err != nil {
		return nil, err
	}
	return checkPayload(body, "seriess")
}

func (c *Client) baseQuery() url.Values {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("file_type", "json")
	return q
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// checkPayload проверяет, что ответ — JSON-объект с нужным массивом.
// FRED на ошибки параметров может ответить 200 с error_message.
func checkPayload(body []byte, field string) (json.RawMessage, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("fred: %w: invalid json", domain.ErrMalformedResponse)
	}
	res := gjson.ParseBytes(body)
	if msg := res.Get("error_message"); msg.Exists() {
		return nil, fmt.Errorf("fred: %w: %s", domain.ErrUpstream, msg.String())
	}
	if !res.Get(field).IsArray() {
		return nil, fmt.Errorf("fred: %w: %s is missing", domain.ErrMalformedResponse, field)
	}
	return json.RawMessage(body), nil
}
