package domain

import (
	"fmt"
	"sort"
	"strings"
)

// EIAOptions — параметры запроса рядов EIA.
type EIAOptions struct {
	Frequency string `json:"frequency"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Значения по умолчанию для запросов EIA.
const (
	EIADefaultFrequency = "monthly"
	EIADefaultStart     = "2023-01"
	EIADefaultEnd       = "2024-12"
)

var eiaFrequencies = map[string]struct{}{
	"hourly": {}, "daily": {}, "weekly": {}, "monthly": {}, "quarterly": {}, "annual": {},
}

// WithDefaults подставляет значения по умолчанию в пустые поля.
func (o EIAOptions) WithDefaults() EIAOptions {
	if o.Frequency == "" {
		o.Frequency = EIADefaultFrequency
	}
	if o.Start == "" {
		o.Start = EIADefaultStart
	}
	if o.End == "" {
		o.End = EIADefaultEnd
	}
	return o
}

// Validate проверяет частоту.
func (o EIAOptions) Validate() error {
	if o.Frequency == "" {
		return nil
	}
	if _, ok := eiaFrequencies[o.Frequency]; !ok {
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidArgument, o.Frequency)
	}
	return nil
}

// EIADataset — описание одного набора данных EIA: маршрут v2 API, колонка значения и фасеты.
type EIADataset struct {
	Key         string
	SeriesID    string
	Name        string
	Units       string
	Description string
	Route       string
	ValueColumn string
	Facets      map[string]string
	Mock        []EIADataPoint
}

// EIADataPoint — точка ряда EIA.
type EIADataPoint struct {
	Period string  `json:"period"`
	Value  float64 `json:"value"`
}

// EIARecord — сырая запись из response.data: период и значение колонки как строка.
type EIARecord struct {
	Period string
	Value  string
}

// EIASeries — нормализованный ряд EIA.
type EIASeries struct {
	SeriesID    string         `json:"series_id"`
	Name        string         `json:"name"`
	Units       string         `json:"units"`
	Frequency   string         `json:"frequency"`
	Data        []EIADataPoint `json:"data"`
	Description string         `json:"description"`
	Copyright   string         `json:"copyright"`
	Source      string         `json:"source"`
}

// EIACopyright — атрибуция EIA.
const EIACopyright = "U.S. Energy Information Administration"

const (
	eiaGenerationRoute = "electricity/electric-power-operational-data/data"
	eiaGenerationUnits = "thousand megawatthours"
)

func generation(key, seriesID, name, fuel, description string, mock ...float64) EIADataset {
	return EIADataset{
		Key:         key,
		SeriesID:    seriesID,
		Name:        name,
		Units:       eiaGenerationUnits,
		Description: description,
		Route:       eiaGenerationRoute,
		ValueColumn: "generation",
		Facets:      map[string]string{"fueltypeid": fuel, "location": "US"},
		Mock:        mockPoints(mock...),
	}
}

func mockPoints(values ...float64) []EIADataPoint {
	out := make([]EIADataPoint, len(values))
	for i, v := range values {
		out[i] = EIADataPoint{Period: fmt.Sprintf("2024-%02d", i+1), Value: v}
	}
	return out
}

// eiaDatasets — все поддерживаемые наборы EIA, ключ — dataType из URL.
var eiaDatasets = map[string]EIADataset{
	"electricity": generation("electricity", "EIA_ELECTRICITY_GENERATION", "Total Electricity Generation", "ALL",
		"Total electricity generation in the United States",
		325000, 310000, 315000, 295000, 305000, 340000),
	"renewable": generation("renewable", "EIA_RENEWABLE_GENERATION", "Renewable Energy Generation", "REN",
		"Renewable energy generation (solar, wind, hydro, geothermal, biomass)",
		45000, 48000, 52000, 58000, 62000, 68000),
	"solar": generation("solar", "EIA_SOLAR_GENERATION", "Solar Energy Generation", "SUN",
		"Solar photovoltaic and thermal energy generation",
		8500, 11200, 15800, 18900, 22400, 24100),
	"wind": generation("wind", "EIA_WIND_GENERATION", "Wind Energy Generation", "WND",
		"Wind turbine energy generation",
		38500, 35200, 32800, 29900, 26400, 25100),
	"coal": generation("coal", "EIA_COAL_GENERATION", "Coal Energy Generation", "COL",
		"Coal-fired power plant energy generation",
		85500, 78200, 75800, 69900, 72400, 82100),
	"nuclear": generation("nuclear", "EIA_NUCLEAR_GENERATION", "Nuclear Energy Generation", "NUC",
		"Nuclear power plant energy generation",
		67500, 71200, 69800, 65900, 68400, 72100),
	"gas-prices": {
		Key:         "gas-prices",
		SeriesID:    "EIA_NATURAL_GAS_PRICES",
		Name:        "Natural Gas Prices",
		Units:       "dollars per thousand cubic feet",
		Description: "U.S. natural gas wellhead prices",
		Route:       "natural-gas/pri/sum/data",
		ValueColumn: "price",
		Facets:      map[string]string{"duoarea": "NUS"},
		Mock:        mockPoints(2.85, 2.92, 2.78, 2.65, 2.58, 2.71),
	},
	"petroleum": {
		Key:         "petroleum",
		SeriesID:    "EIA_PETROLEUM_PRICES",
		Name:        "Petroleum Prices",
		Units:       "dollars per barrel",
		Description: "U.S. petroleum and crude oil prices",
		Route:       "petroleum/pri/spt/data",
		ValueColumn: "price",
		Facets:      map[string]string{"duoarea": "NUS"},
		Mock:        mockPoints(78.50, 82.30, 75.80, 79.60, 81.20, 77.90),
	},
}

// LookupEIADataset ищет набор по dataType. Неизвестный dataType — ErrInvalidArgument.
func LookupEIADataset(dataType string) (EIADataset, error) {
	ds, ok := eiaDatasets[dataType]
	if !ok {
		return EIADataset{}, fmt.Errorf("%w: invalid data type %q, available: %s",
			ErrInvalidArgument, dataType, strings.Join(EIADataTypes(), ", "))
	}
	return ds, nil
}

// EIADataTypes возвращает отсортированный список доступных dataType.
func EIADataTypes() []string {
	keys := make([]string, 0, len(eiaDatasets))
	for k := range eiaDatasets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MockSeries возвращает заглушку набора, которая отдаётся при недоступности EIA.
func (d EIADataset) MockSeries() *EIASeries {
	data := make([]EIADataPoint, len(d.Mock))
	copy(data, d.Mock)
	return &EIASeries{
		SeriesID:    d.SeriesID,
		Name:        d.Name + " (Mock)",
		Units:       d.Units,
		Frequency:   EIADefaultFrequency,
		Data:        data,
		Description: "Mock " + strings.ToLower(d.Name) + " data (API unavailable)",
		Copyright:   EIACopyright,
		Source:      SourceMock,
	}
}
