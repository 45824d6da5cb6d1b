package bls

import (
	"bytes"
	"encoding/json"
	"strconv"

	"govdataviz/internal/domain"
)

// year — год из тела запроса: фронтенд шлёт и строкой, и числом.
type year string

// UnmarshalJSON принимает "2024", 2024 и null.
func (y *year) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*y = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*y = year(s)
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*y = year(strconv.Itoa(n))
	return nil
}

// MultipleSeriesRequest — тело POST /api/bls/series.
type MultipleSeriesRequest struct {
	SeriesIDs    []string `json:"seriesIds"`
	StartYear    year     `json:"startYear"`
	EndYear      year     `json:"endYear"`
	Calculations bool     `json:"calculations"`
}

// Options возвращает параметры запроса рядов.
func (r MultipleSeriesRequest) Options() domain.BLSOptions {
	return domain.BLSOptions{StartYear: string(r.StartYear), EndYear: string(r.EndYear), Calculations: r.Calculations}
}
