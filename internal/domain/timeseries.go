package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Частоты временных рядов.
const (
	FrequencyAnnual    = "annual"
	FrequencyQuarterly = "quarterly"
	FrequencyMonthly   = "monthly"
	FrequencyWeekly    = "weekly"
	FrequencyDaily     = "daily"
)

// DataPoint — одна точка временного ряда.
type DataPoint struct {
	Date     string         `json:"date"`
	Value    float64        `json:"value"`
	Label    string         `json:"label,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// TimeSeries — общий вид временного ряда, в который приводятся ответы всех источников.
type TimeSeries struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Description        string      `json:"description,omitempty"`
	Units              string      `json:"units"`
	Frequency          string      `json:"frequency"`
	Source             string      `json:"source"`
	LastUpdated        time.Time   `json:"lastUpdated"`
	Data               []DataPoint `json:"data"`
	SeasonallyAdjusted bool        `json:"seasonallyAdjusted"`
}

// Point — упрощённая точка для дашборда.
type Point struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// Points сворачивает ряд в упрощённые точки. monthOnly обрезает дату до YYYY-MM.
func (ts *TimeSeries) Points(monthOnly bool) []Point {
	out := make([]Point, 0, len(ts.Data))
	for _, p := range ts.Data {
		date := p.Date
		if monthOnly {
			date = MonthOf(date)
		}
		out = append(out, Point{Date: date, Value: p.Value})
	}
	return out
}

// MonthOf возвращает префикс YYYY-MM даты (или строку целиком, если она короче).
func MonthOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// ParseNumericValue разбирает числовое значение из ответа API.
// Пустая строка, "." (пропуск у FRED), "-", NaN/Inf и всё нечисловое дают found == false.
func ParseNumericValue(raw string) (value float64, found bool) {
	s := strings.TrimSpace(raw)
	if s == "" || s == "." || s == "-" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
