package charts

import (
	"encoding/json"

	"govdataviz/internal/domain"
)

// ConfigRequest — тело POST /api/charts/config.
type ConfigRequest struct {
	Type    domain.ChartType           `json:"type"`
	Data    json.RawMessage            `json:"data"`
	Options domain.ChartRequestOptions `json:"options"`
}

// ExportRequest — тело POST /api/charts/export.
type ExportRequest struct {
	Config *domain.ChartOptions `json:"config"`
	Format domain.ExportFormat  `json:"format"`
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
}

// Значения по умолчанию для выгрузки.
const (
	defaultExportFormat = domain.ExportPNG
	defaultExportWidth  = 800
	defaultExportHeight = 600
)

// Options возвращает параметры выгрузки с подставленными значениями по умолчанию.
func (r ExportRequest) Options() domain.ExportOptions {
	o := domain.ExportOptions{Format: r.Format, Width: r.Width, Height: r.Height}
	if o.Format == "" {
		o.Format = defaultExportFormat
	}
	if o.Width == 0 {
		o.Width = defaultExportWidth
	}
	if o.Height == 0 {
		o.Height = defaultExportHeight
	}
	return o
}
