package domain

import "strings"

// CatalogEntry — известный ряд, по которому работает поиск /api/data/search.
type CatalogEntry struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
	Units  string `json:"units,omitempty"`
}

// catalog — встроенный справочник популярных рядов.
var catalog = []CatalogEntry{
	{ID: BLSSeriesCPIAllUrban, Title: "Consumer Price Index, All Urban Consumers", Source: SourceBLS, Units: "index"},
	{ID: BLSSeriesCPIFood, Title: "Consumer Price Index, Food", Source: SourceBLS, Units: "index"},
	{ID: BLSSeriesCPIEnergy, Title: "Consumer Price Index, Energy", Source: SourceBLS, Units: "index"},
	{ID: BLSSeriesUnemploymentRate, Title: "Unemployment Rate", Source: SourceBLS, Units: "percent"},
	{ID: BLSSeriesEmploymentLevel, Title: "Employment Level", Source: SourceBLS, Units: "thousands of persons"},
	{ID: BLSSeriesLaborForce, Title: "Civilian Labor Force Level", Source: SourceBLS, Units: "thousands of persons"},
	{ID: BLSSeriesHourlyEarningsAll, Title: "Average Hourly Earnings of All Employees, Total Private", Source: SourceBLS, Units: "dollars per hour"},
	{ID: FREDSeriesGDP, Title: "Gross Domestic Product", Source: SourceFRED, Units: "billions of dollars"},
	{ID: FREDSeriesRealGDP, Title: "Real Gross Domestic Product", Source: SourceFRED, Units: "billions of chained 2017 dollars"},
	{ID: FREDSeriesFedFunds, Title: "Federal Funds Effective Rate", Source: SourceFRED, Units: "percent"},
	{ID: FREDSeriesTenYearTreasury, Title: "10-Year Treasury Constant Maturity Rate", Source: SourceFRED, Units: "percent"},
	{ID: FREDSeriesUnemployment, Title: "Unemployment Rate", Source: SourceFRED, Units: "percent"},
	{ID: FREDSeriesCPI, Title: "Consumer Price Index for All Urban Consumers: All Items", Source: SourceFRED, Units: "index 1982-1984=100"},
	{ID: CensusVarTotalPopulation, Title: "Total Population (ACS 5-year)", Source: SourceCensus, Units: "persons"},
	{ID: "B19013_001E", Title: "Median Household Income (ACS 5-year)", Source: SourceCensus, Units: "dollars"},
	{ID: "B25077_001E", Title: "Median Home Value (ACS 5-year)", Source: SourceCensus, Units: "dollars"},
	{ID: "B01002_001E", Title: "Median Age (ACS 5-year)", Source: SourceCensus, Units: "years"},
	{ID: NOAATypeAvgTemp, Title: "Average Temperature", Source: SourceNOAA, Units: "degrees Fahrenheit"},
	{ID: NOAATypePrecip, Title: "Precipitation", Source: SourceNOAA, Units: "inches"},
}

func init() {
	for _, key := range EIADataTypes() {
		ds := eiaDatasets[key]
		catalog = append(catalog, CatalogEntry{ID: ds.SeriesID, Title: ds.Name, Source: SourceEIA, Units: ds.Units})
	}
}

// SearchCatalog ищет подстроку query (без учёта регистра) в id и title. source пустой — все источники.
func SearchCatalog(query, source string, limit int) []CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []CatalogEntry{}
	for _, e := range catalog {
		if source != "" && e.Source != source {
			continue
		}
		if strings.Contains(strings.ToLower(e.ID), q) || strings.Contains(strings.ToLower(e.Title), q) {
			out = append(out, e)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out
}
