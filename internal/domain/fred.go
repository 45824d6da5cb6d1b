package domain

import "fmt"

// Часто используемые ряды FRED.
const (
	FREDSeriesGDP             = "GDP"
	FREDSeriesRealGDP         = "GDPC1"
	FREDSeriesFedFunds        = "FEDFUNDS"
	FREDSeriesTenYearTreasury = "GS10"
	FREDSeriesUnemployment    = "UNRATE"
	FREDSeriesCPI             = "CPIAUCSL"
)

// FREDObservationOptions — параметры /series/observations.
type FREDObservationOptions struct {
	ObservationStart string `json:"observation_start,omitempty"`
	ObservationEnd   string `json:"observation_end,omitempty"`
	Frequency        string `json:"frequency,omitempty"`
	Units            string `json:"units,omitempty"`
}

var fredUnits = map[string]struct{}{
	"lin": {}, "chg": {}, "ch1": {}, "pch": {}, "pc1": {}, "pca": {}, "cch": {}, "cca": {}, "log": {},
}

var fredFrequencies = map[string]struct{}{
	"d": {}, "w": {}, "bw": {}, "m": {}, "q": {}, "sa": {}, "a": {},
	"wef": {}, "weth": {}, "wew": {}, "wetu": {}, "wem": {}, "wesu": {}, "wesa": {}, "bwew": {}, "bwem": {},
}

// Validate проверяет units, frequency и формат дат.
func (o FREDObservationOptions) Validate() error {
	if o.Units != "" {
		if _, ok := fredUnits[o.Units]; !ok {
			return fmt.Errorf("%w: unknown units %q", ErrInvalidArgument, o.Units)
		}
	}
	if o.Frequency != "" {
		if _, ok := fredFrequencies[o.Frequency]; !ok {
			return fmt.Errorf("%w: unknown frequency %q", ErrInvalidArgument, o.Frequency)
		}
	}
	for _, d := range []string{o.ObservationStart, o.ObservationEnd} {
		if d != "" && !isISODate(d) {
			return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidArgument, d)
		}
	}
	return nil
}

// FREDSearchOptions — параметры /series/search.
type FREDSearchOptions struct {
	SearchText string `json:"search_text"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}

// Validate проверяет обязательный search_text и границы пагинации.
func (o FREDSearchOptions) Validate() error {
	if o.SearchText == "" {
		return fmt.Errorf("%w: search_text parameter is required", ErrInvalidArgument)
	}
	if o.Limit < 1 || o.Limit > 1000 {
		return fmt.Errorf("%w: limit must be between 1 and 1000", ErrInvalidArgument)
	}
	if o.Offset < 0 {
		return fmt.Errorf("%w: offset must be non-negative", ErrInvalidArgument)
	}
	return nil
}
