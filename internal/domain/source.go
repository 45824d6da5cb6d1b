package domain

// Источники данных.
const (
	SourceBLS    = "bls"
	SourceFRED   = "fred"
	SourceCensus = "census"
	SourceEIA    = "eia"
	SourceNOAA   = "noaa"
	SourceMock   = "mock"
)

// SourceInfo — описание источника данных для /api/data/sources.
type SourceInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

// Sources возвращает список поддерживаемых источников. available(id) решает, доступен ли источник.
func Sources(available func(id string) bool) []SourceInfo {
	list := []SourceInfo{
		{ID: SourceBLS, Name: "Bureau of Labor Statistics", Description: "Employment, unemployment, wages, and price data"},
		{ID: SourceFRED, Name: "Federal Reserve Economic Data", Description: "Economic indicators and financial data"},
		{ID: SourceCensus, Name: "U.S. Census Bureau", Description: "Population, demographics, and economic census data"},
		{ID: SourceEIA, Name: "U.S. Energy Information Administration", Description: "Electricity generation, fuel and energy price data"},
		{ID: SourceNOAA, Name: "National Oceanic and Atmospheric Administration", Description: "Temperature, precipitation, and climate data"},
	}
	for i := range list {
		list[i].Available = available == nil || available(list[i].ID)
	}
	return list
}
