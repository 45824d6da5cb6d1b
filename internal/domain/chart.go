package domain

import (
	"encoding/json"
	"fmt"
)

// ChartType — тип графика.
type ChartType string

// Поддерживаемые типы графиков.
const (
	ChartLine        ChartType = "line"
	ChartBar         ChartType = "bar"
	ChartArea        ChartType = "area"
	ChartPie         ChartType = "pie"
	ChartScatter     ChartType = "scatter"
	ChartHistogram   ChartType = "histogram"
	ChartHeatmap     ChartType = "heatmap"
	ChartCandlestick ChartType = "candlestick"
)

// Valid сообщает, известен ли тип.
func (t ChartType) Valid() bool {
	switch t {
	case ChartLine, ChartBar, ChartArea, ChartPie, ChartScatter, ChartHistogram, ChartHeatmap, ChartCandlestick:
		return true
	}
	return false
}

// ChartColors — палитра по умолчанию.
var ChartColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// ChartConfig — общие настройки графика.
type ChartConfig struct {
	Type       ChartType `json:"type"`
	Title      string    `json:"title"`
	Subtitle   string    `json:"subtitle,omitempty"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	Responsive bool      `json:"responsive"`
	Animation  bool      `json:"animation"`
	Theme      string    `json:"theme"`
}

// ChartAxis — ось.
type ChartAxis struct {
	Label string `json:"label"`
	Type  string `json:"type"`
	Grid  bool   `json:"grid"`
}

// ChartSeries — серия; Data — точки как пришли от клиента.
type ChartSeries struct {
	Name  string          `json:"name"`
	Data  json.RawMessage `json:"data"`
	Color string          `json:"color"`
}

// ChartLegend — легенда.
type ChartLegend struct {
	Enabled  bool   `json:"enabled"`
	Position string `json:"position"`
}

// ChartTooltip — подсказки.
type ChartTooltip struct {
	Enabled bool `json:"enabled"`
}

// ChartZoom — масштабирование.
type ChartZoom struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type"`
}

// ChartOptions — полная конфигурация графика для фронтенда.
type ChartOptions struct {
	Config  ChartConfig   `json:"config"`
	XAxis   ChartAxis     `json:"xAxis"`
	YAxis   []ChartAxis   `json:"yAxis"`
	Series  []ChartSeries `json:"series"`
	Legend  ChartLegend   `json:"legend"`
	Tooltip ChartTooltip  `json:"tooltip"`
	Zoom    ChartZoom     `json:"zoom"`
}

// ChartRequestOptions — необязательные настройки из POST /api/charts/config.
type ChartRequestOptions struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Theme      string `json:"theme"`
	XAxisLabel string `json:"xAxisLabel"`
	XAxisType  string `json:"xAxisType"`
	YAxisLabel string `json:"yAxisLabel"`
	SeriesName string `json:"seriesName"`
	Color      string `json:"color"`
}

// ExportFormat — формат выгрузки графика.
type ExportFormat string

// Поддерживаемые форматы выгрузки.
const (
	ExportPNG ExportFormat = "png"
	ExportJPG ExportFormat = "jpg"
	ExportSVG ExportFormat = "svg"
)

// ContentType возвращает MIME-тип формата.
func (f ExportFormat) ContentType() string {
	switch f {
	case ExportSVG:
		return "image/svg+xml"
	case ExportJPG:
		return "image/jpeg"
	default:
		return "image/png"
	}
}

// ExportOptions — параметры выгрузки.
type ExportOptions struct {
	Format ExportFormat
	Width  int
	Height int
}

// Validate проверяет формат и размеры.
func (o ExportOptions) Validate() error {
	switch o.Format {
	case ExportPNG, ExportJPG, ExportSVG:
	default:
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidArgument, o.Format)
	}
	if o.Width < 50 || o.Width > 4000 || o.Height < 50 || o.Height > 4000 {
		return fmt.Errorf("%w: width and height must be between 50 and 4000", ErrInvalidArgument)
	}
	return nil
}
