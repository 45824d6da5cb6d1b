package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const censusStates = `[
	["NAME","B01003_001E","state"],
	["Alabama","5028092","01"],
	["California","39356104","06"],
	["Texas","29243342","48"],
	["Puerto Rico",null,"72"]
]`

func TestParseCensusTable(t *testing.T) {
	t.Run("заголовок и строки", func(t *testing.T) {
		tbl, err := ParseCensusTable([]byte(censusStates))
		require.NoError(t, err)
		assert.Equal(t, []string{"NAME", "B01003_001E", "state"}, tbl.Columns)
		require.Len(t, tbl.Rows, 4)
		assert.Equal(t, "", tbl.Rows[3][1], "null превращается в пустую строку")
		assert.Equal(t, 2, tbl.Column("state"))
		assert.Equal(t, -1, tbl.Column("missing"))
	})

	t.Run("битый JSON", func(t *testing.T) {
		_, err := ParseCensusTable([]byte(`{"error":"x"}`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("пустая таблица", func(t *testing.T) {
		_, err := ParseCensusTable([]byte(`[]`))
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("строка не совпадает с заголовком", func(t *testing.T) {
		_, err := ParseCensusTable([]byte(`[["NAME","state"],["Alabama"]]`))
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})
}

func TestPopulationByState(t *testing.T) {
	tbl, err := ParseCensusTable([]byte(censusStates))
	require.NoError(t, err)

	got, err := PopulationByState(tbl, CensusVarTotalPopulation, 2)
	require.NoError(t, err)
	assert.Equal(t, []StatePopulation{
		{State: "California", FIPS: "06", Value: 39356104},
		{State: "Texas", FIPS: "48", Value: 29243342},
	}, got)

	all, err := PopulationByState(tbl, CensusVarTotalPopulation, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3, "строки без числа пропускаются")

	_, err = PopulationByState(tbl, "B19013_001E", 10)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCensusDataOptions_Validate(t *testing.T) {
	assert.NoError(t, CensusDataOptions{Dataset: CensusDatasetACS5, Get: "NAME"}.Validate())
	assert.ErrorIs(t, CensusDataOptions{Dataset: CensusDatasetACS5}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, CensusDataOptions{Get: "NAME"}.Validate(), ErrInvalidArgument)
}
