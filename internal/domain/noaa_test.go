package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyMean(t *testing.T) {
	results := []NOAADataPoint{
		{Date: "2024-02-01T00:00:00", Value: 40},
		{Date: "2024-01-01T00:00:00", Value: 30},
		{Date: "2024-01-15T00:00:00", Value: 31},
		{Date: "2024-01-31T00:00:00", Value: 31},
		{Date: "2024-02-10T00:00:00", Value: 41.2},
	}

	t.Run("один знак", func(t *testing.T) {
		got := MonthlyMean(results, 1)
		assert.Equal(t, []Point{{"2024-01", 30.7}, {"2024-02", 40.6}}, got)
	})

	t.Run("два знака", func(t *testing.T) {
		got := MonthlyMean(results, 2)
		assert.Equal(t, []Point{{"2024-01", 30.67}, {"2024-02", 40.6}}, got)
	})

	t.Run("пустой вход", func(t *testing.T) {
		assert.Empty(t, MonthlyMean(nil, 1))
	})
}

func TestLastN(t *testing.T) {
	pts := []Point{{"2024-01", 1}, {"2024-02", 2}, {"2024-03", 3}}

	assert.Equal(t, pts[1:], LastN(pts, 2))
	assert.Equal(t, pts, LastN(pts, 12))
	assert.Equal(t, pts, LastN(pts, 0))
}

func TestGroupExtremes(t *testing.T) {
	results := []NOAADataPoint{
		{Date: "d1", Value: 90, DataType: NOAATypeMaxTemp},
		{Date: "d2", Value: 95, DataType: NOAATypeMaxTemp},
		{Date: "d3", Value: 97, DataType: NOAATypeMaxTemp},
		{Date: "d1", Value: 10, DataType: NOAATypeMinTemp},
		{Date: "d1", Value: 0.4, DataType: NOAATypePrecip},
		{Date: "d1", Value: 55, DataType: NOAATypeAvgTemp},
	}

	got := GroupExtremes(results, 2)
	assert.Equal(t, []Point{{"d1", 90}, {"d2", 95}}, got.MaxTemp, "не больше perType на тип")
	assert.Equal(t, []Point{{"d1", 10}}, got.MinTemp)
	assert.Equal(t, []Point{{"d1", 0.4}}, got.Precipitation)

	empty := GroupExtremes(nil, 10)
	assert.NotNil(t, empty.MaxTemp, "пустые группы сериализуются как []")
	assert.Empty(t, empty.Precipitation)
}

func TestNOAAOptions(t *testing.T) {
	o := NOAAOptions{}.WithDefaults()
	assert.Equal(t, NOAAOptions{
		StartDate:  NOAADefaultStartDate,
		EndDate:    NOAADefaultEndDate,
		LocationID: NOAADefaultLocation,
		DatasetID:  NOAADefaultDataset,
	}, o)
	assert.NoError(t, o.Validate())

	assert.ErrorIs(t, NOAAOptions{StartDate: "2024/01/01"}.Validate(), ErrInvalidArgument)
	assert.ErrorIs(t, NOAAOptions{StartDate: "2024-12-01", EndDate: "2024-01-01"}.Validate(), ErrInvalidArgument)
}
