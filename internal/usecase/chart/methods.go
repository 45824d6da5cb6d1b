package chart

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/jpeg"
	"image/png"
	"strings"

	"govdataviz/internal/domain"
)

// GenerateConfig собирает конфигурацию графика из типа, данных и необязательных настроек.
func (u *UseCase) GenerateConfig(ctx context.Context, chartType domain.ChartType, data json.RawMessage, opts domain.ChartRequestOptions) (*domain.ChartOptions, error) {
	if chartType == "" || len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil, fmt.Errorf("%w: chart type and data are required", domain.ErrInvalidArgument)
	}
	if !chartType.Valid() {
		return nil, fmt.Errorf("%w: unknown chart type %q", domain.ErrInvalidArgument, chartType)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: chart data is not valid json", domain.ErrInvalidArgument)
	}

	cfg := &domain.ChartOptions{
		Config: domain.ChartConfig{
			Type:       chartType,
			Title:      or(opts.Title, defaultTitle),
			Subtitle:   opts.Subtitle,
			Width:      orInt(opts.Width, defaultWidth),
			Height:     orInt(opts.Height, defaultHeight),
			Responsive: true,
			Animation:  true,
			Theme:      or(opts.Theme, defaultTheme),
		},
		XAxis: domain.ChartAxis{Label: or(opts.XAxisLabel, "Date"), Type: or(opts.XAxisType, "datetime"), Grid: true},
		YAxis: []domain.ChartAxis{{Label: or(opts.YAxisLabel, "Value"), Type: "linear", Grid: true}},
		Series: []domain.ChartSeries{{
			Name:  or(opts.SeriesName, "Data"),
			Data:  data,
			Color: or(opts.Color, domain.ChartColors[0]),
		}},
		Legend:  domain.ChartLegend{Enabled: true, Position: "bottom"},
		Tooltip: domain.ChartTooltip{Enabled: true},
		Zoom:    domain.ChartZoom{Enabled: true, Type: "x"},
	}
	return cfg, nil
}

// Export рисует график по конфигурации и возвращает изображение в формате opts.Format.
func (u *UseCase) Export(ctx context.Context, cfg domain.ChartOptions, opts domain.ExportOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p := newPlot(cfg, opts.Width, opts.Height)
	u.log.Info("chart export", "format", opts.Format, "width", opts.Width, "height", opts.Height, "series", len(p.series))

	if opts.Format == domain.ExportSVG {
		return p.svg(), nil
	}

	img := p.raster()
	var buf bytes.Buffer
	var err error
	if opts.Format == domain.ExportJPG {
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	} else {
		err = png.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", opts.Format, err)
	}
	return buf.Bytes(), nil
}

func or(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
