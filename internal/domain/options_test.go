package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFREDObservationOptions_Validate(t *testing.T) {
	assert.NoError(t, FREDObservationOptions{}.Validate())
	assert.NoError(t, FREDObservationOptions{ObservationStart: "2023-01-01", Frequency: "m", Units: "pc1"}.Validate())
	assert.ErrorIs(t, FREDObservationOptions{Units: "percent"}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, FREDObservationOptions{Frequency: "monthly"}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, FREDObservationOptions{ObservationEnd: "2024-1-1"}.Validate(), ErrInvalidArgument)
}

func TestFREDSearchOptions_Validate(t *testing.T) {
	assert.NoError(t, FREDSearchOptions{SearchText: "gdp", Limit: 20}.Validate())
	assert.ErrorIs(t, FREDSearchOptions{Limit: 20}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, FREDSearchOptions{SearchText: "gdp", Limit: 0}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, FREDSearchOptions{SearchText: "gdp", Limit: 1001}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, FREDSearchOptions{SearchText: "gdp", Limit: 20, Offset: -1}.Validate(), ErrInvalidArgument)
}

func TestChartType_Valid(t *testing.T) {
	for _, ct := range []ChartType{ChartLine, ChartBar, ChartArea, ChartPie, ChartScatter, ChartHistogram, ChartHeatmap, ChartCandlestick} {
		assert.True(t, ct.Valid(), ct)
	}
	assert.False(t, ChartType("radar").Valid())
	assert.False(t, ChartType("").Valid())
}

func TestExportOptions_Validate(t *testing.T) {
	assert.NoError(t, ExportOptions{Format: ExportPNG, Width: 800, Height: 600}.Validate())
	assert.NoError(t, ExportOptions{Format: ExportSVG, Width: 50, Height: 4000}.Validate())
	assert.ErrorIs(t, ExportOptions{Format: "pdf", Width: 800, Height: 600}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, ExportOptions{Format: ExportJPG, Width: 10, Height: 600}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, ExportOptions{Format: ExportJPG, Width: 800, Height: 5000}.Validate(), ErrInvalidArgument)

	assert.Equal(t, "image/svg+xml", ExportSVG.ContentType())
	assert.Equal(t, "image/jpeg", ExportJPG.ContentType())
	assert.Equal(t, "image/png", ExportPNG.ContentType())
}
