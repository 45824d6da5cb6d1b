package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"govdataviz/internal/domain"
	"govdataviz/internal/infrastructure/upstream"
)

// Data запрашивает /data. Каждый тип данных уходит отдельным параметром datatypeid.
// Значения приводятся к числу, нечисловые — 0. Ответ без results — ошибка ErrNoData.
func (c *Client) Data(ctx context.Context, q domain.NOAAQuery) (*domain.NOAAData, error) {
	params := url.Values{}
	params.Set("datasetid", q.DatasetID)
	for _, dt := range q.DataTypeIDs {
		params.Add("datatypeid", dt)
	}
	params.Set("locationid", q.LocationID)
	params.Set("startdate", q.StartDate)
	params.Set("enddate", q.EndDate)
	params.Set("units", "standard")
	params.Set("limit", strconv.Itoa(domain.NOAAPageLimit))
	if q.SortField != "" {
		params.Set("sortfield", q.SortField)
		params.Set("sortorder", q.SortOrder)
	}

	body, err := c.http.Get(ctx, c.baseURL+"/data", params, upstream.WithHeader("token", c.token))
	if err != nil {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("noaa: %w: invalid json", domain.ErrMalformedResponse)
	}
	res := gjson.ParseBytes(body)
	results := res.Get("results")
	if !results.IsArray() {
		return nil, fmt.Errorf("noaa: %w: no results in response", domain.ErrNoData)
	}

	rs := res.Get("metadata.resultset")
	out := &domain.NOAAData{
		Metadata: domain.NOAAMetadata{ResultSet: domain.NOAAResultSet{
			Offset: int(rs.Get("offset").Int()),
			Count:  int(rs.Get("count").Int()),
			Limit:  int(rs.Get("limit").Int()),
		}},
		Results: make([]domain.NOAADataPoint, 0, len(results.Array())),
	}
	for _, item := range results.Array() {
		value, _ := domain.ParseNumericValue(item.Get("value").String())
		out.Results = append(out.Results, domain.NOAADataPoint{
			Date:       item.Get("date").String(),
			Value:      value,
			DataType:   item.Get("datatype").String(),
			Station:    item.Get("station").String(),
			Attributes: item.Get("attributes").String(),
		})
	}
	return out, nil
}

// Datasets запрашивает список наборов данных CDO.
func (c *Client) Datasets(ctx context.Context) ([]domain.NOAADataset, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(domain.NOAAPageLimit))

	body, err := c.http.Get(ctx, c.baseURL+"/datasets", params, upstream.WithHeader("token", c.token))
	if err != nil {
		return nil, err
	}
	results := gjson.GetBytes(body, "results")
	if !results.IsArray() {
		return nil, fmt.Errorf("noaa: %w: no datasets found", domain.ErrNoData)
	}
	var out []domain.NOAADataset
	if err := json.Unmarshal([]byte(results.Raw), &out); err != nil {
		return nil, fmt.Errorf("noaa: %w: %v", domain.ErrMalformedResponse, err)
	}
	return out, nil
}
