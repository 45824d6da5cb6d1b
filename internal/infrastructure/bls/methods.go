package bls

import (
	"context"
	"encoding/json"
	"fmt"

	"govdataviz/internal/domain"
)

// FetchSeries отправляет POST /timeseries/data/. Ключ регистрации и catalog=true добавляются, если ключ задан.
// Статус ответа не проверяется: это решает вызывающий.
func (c *Client) FetchSeries(ctx context.Context, req domain.BLSRequest) (*domain.BLSResponse, error) {
	if c.apiKey != "" {
		req.RegistrationKey = c.apiKey
		req.Catalog = true
	}
	body, err := c.http.PostJSON(ctx, c.baseURL+"/timeseries/data/", req)
	if err != nil {
		return nil, err
	}
	var resp domain.BLSResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("bls: %w: %v", domain.ErrMalformedResponse, err)
	}
	return &resp, nil
}
