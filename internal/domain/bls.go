package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// BLSMaxSeriesPerRequest — ограничение BLS API на число рядов в одном запросе.
const BLSMaxSeriesPerRequest = 50

// BLSStatusSucceeded — статус успешного ответа BLS.
const BLSStatusSucceeded = "REQUEST_SUCCEEDED"

// Часто используемые ряды BLS.
const (
	BLSSeriesCPIAllUrban       = "CUUR0000SA0"
	BLSSeriesCPIFood           = "CUUR0000SAF1"
	BLSSeriesCPIEnergy         = "CUUR0000SA0E"
	BLSSeriesUnemploymentRate  = "LNS14000000"
	BLSSeriesEmploymentLevel   = "LNS12000000"
	BLSSeriesLaborForce        = "LNS11000000"
	BLSSeriesHourlyEarningsAll = "CES0500000003"
)

// BLSOptions — параметры запроса рядов BLS. Порядок полей фиксирует JSON для ключа кэша.
type BLSOptions struct {
	StartYear    string `json:"startYear,omitempty"`
	EndYear      string `json:"endYear,omitempty"`
	Calculations bool   `json:"calculations,omitempty"`
}

// Validate проверяет, что годы — четырёхзначные числа и начало не позже конца.
func (o BLSOptions) Validate() error {
	for _, y := range []string{o.StartYear, o.EndYear} {
		if y == "" {
			continue
		}
		if _, err := strconv.Atoi(y); err != nil || len(y) != 4 {
			return fmt.Errorf("%w: year must be YYYY, got %q", ErrInvalidArgument, y)
		}
	}
	if o.StartYear != "" && o.EndYear != "" && o.StartYear > o.EndYear {
		return fmt.Errorf("%w: startYear %s is after endYear %s", ErrInvalidArgument, o.StartYear, o.EndYear)
	}
	return nil
}

// BLSRequest — тело POST /timeseries/data/.
type BLSRequest struct {
	SeriesID        []string `json:"seriesid"`
	StartYear       string   `json:"startyear,omitempty"`
	EndYear         string   `json:"endyear,omitempty"`
	Catalog         bool     `json:"catalog,omitempty"`
	Calculations    bool     `json:"calculations,omitempty"`
	RegistrationKey string   `json:"registrationkey,omitempty"`
}

// BLSResponse — ответ BLS API.
type BLSResponse struct {
	Status       string   `json:"status"`
	ResponseTime int      `json:"responseTime"`
	Message      []string `json:"message"`
	Results      struct {
		Series []BLSSeries `json:"series"`
	} `json:"Results"`
}

// BLSSeries — один ряд в ответе BLS.
type BLSSeries struct {
	SeriesID string         `json:"seriesID"`
	Data     []BLSDataPoint `json:"data"`
	Catalog  *BLSCatalog    `json:"catalog,omitempty"`
}

// BLSDataPoint — точка ряда BLS. Значения приходят строками.
type BLSDataPoint struct {
	Year         string         `json:"year"`
	Period       string         `json:"period"`
	PeriodName   string         `json:"periodName"`
	Latest       string         `json:"latest,omitempty"`
	Value        string         `json:"value"`
	Footnotes    []BLSFootnote  `json:"footnotes"`
	Calculations map[string]any `json:"calculations,omitempty"`
}

// BLSFootnote — сноска к точке.
type BLSFootnote struct {
	Code string `json:"code,omitempty"`
	Text string `json:"text,omitempty"`
}

// BLSCatalog — каталожное описание ряда (отдаётся только зарегистрированным ключам).
type BLSCatalog struct {
	SeriesTitle        string `json:"series_title"`
	SeriesID           string `json:"series_id"`
	SeasonallyAdjusted string `json:"seasonally_adjusted"`
	SurveyName         string `json:"survey_name"`
	SurveyAbbreviation string `json:"survey_abbreviation"`
	MeasureDataType    string `json:"measure_data_type"`
}

// BLSPeriodToDate переводит год и период BLS в дату YYYY-MM-DD.
// M01..M12 — первое число месяца, M13 (среднегодовое) — 31 декабря,
// Q1..Q4 — первое число первого месяца квартала, остальное — 31 декабря.
func BLSPeriodToDate(year, period string) (string, error) {
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return "", fmt.Errorf("%w: bls year %q", ErrMalformedResponse, year)
	}
	yearEnd := fmt.Sprintf("%04d-12-31", y)

	switch {
	case period == "M13":
		return yearEnd, nil
	case strings.HasPrefix(period, "M"):
		m, err := strconv.Atoi(period[1:])
		if err != nil || m < 1 || m > 12 {
			return "", fmt.Errorf("%w: bls period %q", ErrMalformedResponse, period)
		}
		return fmt.Sprintf("%04d-%02d-01", y, m), nil
	case strings.HasPrefix(period, "Q"):
		q, err := strconv.Atoi(period[1:])
		if err != nil || q < 1 || q > 4 {
			return "", fmt.Errorf("%w: bls period %q", ErrMalformedResponse, period)
		}
		return fmt.Sprintf("%04d-%02d-01", y, (q-1)*3+1), nil
	default:
		return yearEnd, nil
	}
}
