package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Наборы и переменные Census, используемые по умолчанию.
const (
	CensusDatasetACS5        = "acs/acs5"
	CensusVarTotalPopulation = "B01003_001E"
	CensusGeoAllStates       = "state:*"
)

// CensusDataOptions — параметры запроса /data. Порядок полей фиксирует JSON для ключа кэша.
type CensusDataOptions struct {
	Dataset string `json:"dataset"`
	Get     string `json:"get"`
	For     string `json:"for,omitempty"`
	In      string `json:"in,omitempty"`
}

// Validate проверяет обязательный параметр get.
func (o CensusDataOptions) Validate() error {
	if o.Get == "" {
		return fmt.Errorf("%w: get parameter is required", ErrInvalidArgument)
	}
	if o.Dataset == "" {
		return fmt.Errorf("%w: dataset is required", ErrInvalidArgument)
	}
	return nil
}

// CensusTable — таблица Census: первая строка ответа — заголовки.
type CensusTable struct {
	Columns []string
	Rows    [][]string
}

// ParseCensusTable разбирает ответ вида [["NAME","B01003_001E","state"],["Alabama","5028092","01"],...].
func ParseCensusTable(raw []byte) (*CensusTable, error) {
	var matrix [][]*string
	if err := json.Unmarshal(raw, &matrix); err != nil {
		return nil, fmt.Errorf("%w: census table: %v", ErrMalformedResponse, err)
	}
	if len(matrix) == 0 {
		return nil, fmt.Errorf("%w: census table is empty", ErrNoData)
	}
	t := &CensusTable{Columns: deref(matrix[0])}
	for _, row := range matrix[1:] {
		if len(row) != len(t.Columns) {
			return nil, fmt.Errorf("%w: census row has %d cells, header has %d", ErrMalformedResponse, len(row), len(t.Columns))
		}
		t.Rows = append(t.Rows, deref(row))
	}
	return t, nil
}

func deref(row []*string) []string {
	out := make([]string, len(row))
	for i, c := range row {
		if c != nil {
			out[i] = *c
		}
	}
	return out
}

// Column возвращает индекс колонки или -1.
func (t *CensusTable) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// StatePopulation — население штата.
type StatePopulation struct {
	State string `json:"state"`
	FIPS  string `json:"fips,omitempty"`
	Value int64  `json:"value"`
}

// PopulationByState собирает население штатов из таблицы, сортирует по убыванию и берёт limit штук.
func PopulationByState(t *CensusTable, valueColumn string, limit int) ([]StatePopulation, error) {
	nameIdx, valIdx, fipsIdx := t.Column("NAME"), t.Column(valueColumn), t.Column("state")
	if nameIdx < 0 || valIdx < 0 {
		return nil, fmt.Errorf("%w: census table lacks NAME or %s", ErrMalformedResponse, valueColumn)
	}
	out := make([]StatePopulation, 0, len(t.Rows))
	for _, row := range t.Rows {
		v, err := strconv.ParseInt(row[valIdx], 10, 64)
		if err != nil {
			continue
		}
		sp := StatePopulation{State: row[nameIdx], Value: v}
		if fipsIdx >= 0 {
			sp.FIPS = row[fipsIdx]
		}
		out = append(out, sp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
