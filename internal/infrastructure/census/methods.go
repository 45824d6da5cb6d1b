package census

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
)

// Data запрашивает таблицу {base}/{year}/{dataset}?get=...&for=...&in=...
// Ответ — массив строк, первая строка — заголовки.
func (c *Client) Data(ctx context.Context, year int, opts domain.CensusDataOptions) (json.RawMessage, error) {
	q := url.Values{}
	q.Set("get", opts.Get)
	if opts.For != "" {
		q.Set("for", opts.For)
	}
	if opts.In != "" {
		q.Set("in", opts.In)
	}
	c.withKey(q)

	body, err := c.http.Get(ctx, fmt.Sprintf("%s/%d/%s", c.baseURL, year, datasetPath(opts.Dataset)), q)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsArray() {
		return nil, fmt.Errorf("census: %w: expected a json table, got %q", domain.ErrMalformedResponse, upstream.SummarizeBody(body))
	}
	return json.RawMessage(body), nil
}

// Variables запрашивает описание переменных набора: variables.json или groups/{group}.json.
func (c *Client) Variables(ctx context.Context, year int, dataset, group string) (json.RawMessage, error) {
	path := "variables.json"
	if group != "" {
		path = "groups/" + url.PathEscape(group) + ".json"
	}
	q := url.Values{}
	c.withKey(q)

	body, err := c.http.Get(ctx, fmt.Sprintf("%s/%d/%s/%s", c.baseURL, year, datasetPath(dataset), path), q)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(body, "variables").IsObject() {
		return nil, fmt.Errorf("census: %w: variables object is missing", domain.ErrMalformedResponse)
	}
	return json.RawMessage(body), nil
}

func (c *Client) withKey(q url.Values) {
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
}

// datasetPath экранирует сегменты пути набора (acs/acs5 остаётся двумя сегментами).
func datasetPath(dataset string) string {
	parts := strings.Split(strings.Trim(dataset, "/"), "/")
	for i := range parts {
		parts[i] = url.PathEscape(parts[i])
	}
	return strings.Join(parts, "/")
}
