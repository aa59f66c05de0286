package dataset

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_FillsDefaults(t *testing.T) {
	input := `[
		{"Location": "Lagos", "Year": 1985, "Type": "X", "Fatalities": 12, "Country": "Nigeria", "Latitude": 6.45, "Longitude": 3.39},
		{"Location": "Kano", "Year": "1990", "Type": "Y", "Fatalities": null, "Country": "Nigeria"},
		{"Location": " Accra ", "Year": 2001}
	]`

	records, report, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Report{Total: 3, Loaded: 3}, report)

	assert.Equal(t, 0, records[0].ID)
	assert.Equal(t, 12, records[0].Fatalities)
	require.True(t, records[0].HasCoordinates())
	assert.Equal(t, 6.45, *records[0].Latitude)

	assert.Equal(t, 1, records[1].ID)
	assert.Equal(t, 1990, records[1].Year)
	assert.Equal(t, 0, records[1].Fatalities)
	assert.False(t, records[1].HasCoordinates())

	assert.Equal(t, "Accra", records[2].Location)
	assert.Empty(t, records[2].Country)
	assert.Empty(t, records[2].Type)
}

func TestDecode_SkipsRecordsWithoutYear(t *testing.T) {
	input := `[{"Location": "A"}, 42, {"Location": "B", "Year": 1970}, {"Location": "C", "Year": "unknown"}]`

	records, report, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, records, 1)
	assert.Equal(t, "B", records[0].Location)
	assert.Equal(t, 0, records[0].ID)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Skipped)
}

func TestDecode_DropsInvalidCoordinates(t *testing.T) {
	input := `[
		{"Location": "A", "Year": 1970, "Latitude": 95.0, "Longitude": 10.0},
		{"Location": "B", "Year": 1971, "Latitude": 10.0},
		{"Location": "C", "Year": 1972, "Latitude": -33.9, "Longitude": 151.2},
		{"Location": "D", "Year": 1973, "Fatalities": -4}
	]`

	records, report, err := Decode(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.False(t, records[0].HasCoordinates())
	assert.False(t, records[1].HasCoordinates())
	assert.True(t, records[2].HasCoordinates())
	assert.Equal(t, 0, records[3].Fatalities)
	assert.Equal(t, 2, report.DroppedCoordinates)
}

func TestDecode_RejectsNonArray(t *testing.T) {
	_, _, err := Decode(strings.NewReader(`{"Location": "A"}`))
	assert.ErrorIs(t, err, ErrNotArray)

	_, _, err = Decode(strings.NewReader(`null`))
	assert.ErrorIs(t, err, ErrNotArray)

	_, _, err = Decode(strings.NewReader(`[{"Location": `))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotArray)
}

func TestFileSource_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crashes.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"Location": "A", "Year": 1999, "Fatalities": 3}]`), 0o600))

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	records, err := NewFileSource(path, logger).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 3, records[0].Fatalities)

	_, err = NewFileSource(filepath.Join(dir, "missing.json"), logger).Load(context.Background())
	require.Error(t, err)
}

func TestDecode_RejectsNonFiniteAndOutOfRangeNumbers(t *testing.T) {
	input := `[
		{"Location": "A", "Year": 1990, "Fatalities": 1e300},
		{"Location": "B", "Year": "NaN", "Fatalities": 3},
		{"Location": "C", "Year": 1e30, "Fatalities": "Infinity"},
		{"Location": "D", "Year": 1985.7, "Fatalities": 2.9},
		{"Location": "E", "Year": -1977, "Fatalities": "-Inf"},
		{"Location": "F", "Year": 2001, "Fatalities": "NaN", "Latitude": "NaN", "Longitude": 3.39}
	]`

	records, report, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, Report{Total: 6, Loaded: 3, Skipped: 3, DroppedCoordinates: 1}, report)
	require.Len(t, records, 3)

	assert.Equal(t, "A", records[0].Location)
	assert.Equal(t, 1990, records[0].Year)
	assert.Equal(t, 0, records[0].Fatalities)

	assert.Equal(t, "D", records[1].Location)
	assert.Equal(t, 1985, records[1].Year)
	assert.Equal(t, 2, records[1].Fatalities)

	assert.Equal(t, "F", records[2].Location)
	assert.Equal(t, 0, records[2].Fatalities)
	assert.False(t, records[2].HasCoordinates())

	for _, r := range records {
		assert.GreaterOrEqual(t, r.Fatalities, 0)
		assert.GreaterOrEqual(t, r.Year, 0)
		assert.LessOrEqual(t, r.Year, maxYear)
	}
}
