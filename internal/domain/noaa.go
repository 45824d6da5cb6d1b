package domain

import (
	"fmt"
	"math"
	"sort"
)

// Типы данных NOAA GHCND.
const (
	NOAATypeAvgTemp = "TAVG"
	NOAATypeMaxTemp = "TMAX"
	NOAATypeMinTemp = "TMIN"
	NOAATypePrecip  = "PRCP"
)

// Значения по умолчанию для запросов NOAA.
const (
	NOAADefaultDataset   = "GHCND"
	NOAADefaultLocation  = "FIPS:US"
	NOAADefaultStartDate = "2023-01-01"
	NOAADefaultEndDate   = "2024-12-31"
	NOAAPageLimit        = 1000
)

// NOAAOptions — параметры запроса данных NOAA CDO.
type NOAAOptions struct {
	StartDate  string `json:"startdate"`
	EndDate    string `json:"enddate"`
	LocationID string `json:"locationid"`
	DatasetID  string `json:"datasetid,omitempty"`
}

// WithDefaults подставляет значения по умолчанию.
func (o NOAAOptions) WithDefaults() NOAAOptions {
	if o.StartDate == "" {
		o.StartDate = NOAADefaultStartDate
	}
	if o.EndDate == "" {
		o.EndDate = NOAADefaultEndDate
	}
	if o.LocationID == "" {
		o.LocationID = NOAADefaultLocation
	}
	if o.DatasetID == "" {
		o.DatasetID = NOAADefaultDataset
	}
	return o
}

// Validate проверяет формат дат (YYYY-MM-DD) и их порядок.
func (o NOAAOptions) Validate() error {
	for _, d := range []string{o.StartDate, o.EndDate} {
		if d == "" {
			continue
		}
		if !isISODate(d) {
			return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidArgument, d)
		}
	}
	if o.StartDate != "" && o.EndDate != "" && o.StartDate > o.EndDate {
		return fmt.Errorf("%w: startdate %s is after enddate %s", ErrInvalidArgument, o.StartDate, o.EndDate)
	}
	return nil
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range s {
		if i == 4 || i == 7 {
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// NOAAQuery — запрос к /data: набор, типы данных, локация и сортировка.
type NOAAQuery struct {
	DatasetID   string
	DataTypeIDs []string
	LocationID  string
	StartDate   string
	EndDate     string
	SortField   string
	SortOrder   string
}

// NOAAResultSet — метаданные страницы результатов.
type NOAAResultSet struct {
	Offset int `json:"offset"`
	Count  int `json:"count"`
	Limit  int `json:"limit"`
}

// NOAAMetadata — блок metadata ответа.
type NOAAMetadata struct {
	ResultSet NOAAResultSet `json:"resultset"`
}

// NOAADataPoint — одно наблюдение.
type NOAADataPoint struct {
	Date       string  `json:"date"`
	Value      float64 `json:"value"`
	DataType   string  `json:"datatype"`
	Station    string  `json:"station,omitempty"`
	Attributes string  `json:"attributes,omitempty"`
}

// NOAAData — нормализованный ответ /data.
type NOAAData struct {
	Metadata NOAAMetadata    `json:"metadata"`
	Results  []NOAADataPoint `json:"results"`
}

// NOAADataset — описание набора данных CDO.
type NOAADataset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	DataCoverage float64 `json:"datacoverage"`
	MinDate      string  `json:"mindate"`
	MaxDate      string  `json:"maxdate"`
}

// MonthlyMean группирует наблюдения по месяцу (YYYY-MM), усредняет и округляет до decimals знаков.
// Результат отсортирован по дате по возрастанию.
func MonthlyMean(results []NOAADataPoint, decimals int) []Point {
	type acc struct {
		total float64
		count int
	}
	byMonth := make(map[string]*acc)
	for _, r := range results {
		m := MonthOf(r.Date)
		a, ok := byMonth[m]
		if !ok {
			a = &acc{}
			byMonth[m] = a
		}
		a.total += r.Value
		a.count++
	}
	scale := math.Pow(10, float64(decimals))
	out := make([]Point, 0, len(byMonth))
	for m, a := range byMonth {
		out = append(out, Point{Date: m, Value: math.Round(a.total/float64(a.count)*scale) / scale})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// LastN возвращает последние n точек (или все, если их меньше).
func LastN(points []Point, n int) []Point {
	if n <= 0 || len(points) <= n {
		return points
	}
	return points[len(points)-n:]
}

// ClimateExtremes — экстремумы по типам данных.
type ClimateExtremes struct {
	MaxTemp       []Point `json:"maxTemp"`
	MinTemp       []Point `json:"minTemp"`
	Precipitation []Point `json:"precipitation"`
}

// GroupExtremes раскладывает наблюдения по TMAX/TMIN/PRCP, не более perType в каждой группе.
func GroupExtremes(results []NOAADataPoint, perType int) ClimateExtremes {
	out := ClimateExtremes{MaxTemp: []Point{}, MinTemp: []Point{}, Precipitation: []Point{}}
	for _, r := range results {
		var dst *[]Point
		switch r.DataType {
		case NOAATypeMaxTemp:
			dst = &out.MaxTemp
		case NOAATypeMinTemp:
			dst = &out.MinTemp
		case NOAATypePrecip:
			dst = &out.Precipitation
		default:
			continue
		}
		if len(*dst) < perType {
			*dst = append(*dst, Point{Date: r.Date, Value: r.Value})
		}
	}
	return out
}
