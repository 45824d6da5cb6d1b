package eia

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
)

// Records запрашивает маршрут набора ds и возвращает записи response.data в порядке ответа (новые первыми).
func (c *Client) Records(ctx context.Context, ds domain.EIADataset, opts domain.EIAOptions) ([]domain.EIARecord, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("frequency", opts.Frequency)
	q.Set("data[]", ds.ValueColumn)
	for facet, value := range ds.Facets {
		q.Set("facets["+facet+"][]", value)
	}
	q.Set("start", opts.Start)
	q.Set("end", opts.End)
	q.Set("sort[0][column]", "period")
	q.Set("sort[0][direction]", "desc")
	q.Set("offset", "0")
	q.Set("length", strconv.Itoa(PageLength))

	body, err := c.http.Get(ctx, c.baseURL+"/"+ds.Route, q)
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("eia: %w: invalid json", domain.ErrMalformedResponse)
	}
	data := gjson.GetBytes(body, "response.data")
	if !data.IsArray() {
		if msg := gjson.GetBytes(body, "error"); msg.Exists() {
			return nil, fmt.Errorf("eia: %w: %s", domain.ErrUpstream, msg.String())
		}
		return nil, fmt.Errorf("eia: %w: no data found in response", domain.ErrNoData)
	}

	items := data.Array()
	out := make([]domain.EIARecord, 0, len(items))
	for _, item := range items {
		out = append(out, domain.EIARecord{
			Period: item.Get("period").String(),
			Value:  item.Get(ds.ValueColumn).String(),
		})
	}
	return out, nil
}
