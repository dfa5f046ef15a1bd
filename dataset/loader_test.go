package dataset

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoader() *Loader { return NewLoader("testdata") }

func TestLoadChicagoMay(t *testing.T) {
	table, desc, err := testLoader().Load(Selection{City: Chicago, Month: time.May})
	require.NoError(t, err)

	require.Equal(t, 2, table.Len())
	for _, trip := range table.Trips {
		assert.Equal(t, time.May, trip.Month)
	}
	// no day filter: both a Tuesday and a Friday survive
	assert.Equal(t, time.Tuesday, table.Trips[0].Weekday)
	assert.Equal(t, time.Friday, table.Trips[1].Weekday)
	assert.Equal(t, Description{Month: "May", Day: "No"}, desc)
}

func TestLoadDayFilterUsesSundayAsOne(t *testing.T) {
	day, ok := ParseDayCode("3")
	require.True(t, ok)

	for _, city := range Cities {
		table, desc, err := testLoader().Load(Selection{City: city, Day: day, HasDay: true})
		require.NoError(t, err, city)
		require.NotZero(t, table.Len(), city)
		for _, trip := range table.Trips {
			assert.Equal(t, "Tuesday", trip.Weekday.String(), city)
		}
		assert.Equal(t, Description{Month: "No", Day: "Tuesday"}, desc)
	}
}

func TestLoadMonthAndDay(t *testing.T) {
	table, desc, err := testLoader().Load(Selection{City: Chicago, Month: time.May, Day: time.Tuesday, HasDay: true})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, "Clark St & Lincoln Ave", table.Trips[0].StartStation)
	assert.Equal(t, "May", desc.Month)
	assert.Equal(t, "Tuesday", desc.Day)
}

func TestLoadNoFilterDerivesColumns(t *testing.T) {
	table, desc, err := testLoader().Load(Selection{City: Chicago})
	require.NoError(t, err)
	require.Equal(t, 6, table.Len())
	assert.Equal(t, Description{Month: "No", Day: "No"}, desc)

	first := table.Trips[0]
	assert.Equal(t, time.May, first.Month)
	assert.Equal(t, time.Tuesday, first.Weekday)
	assert.Equal(t, 8, first.Hour)
	assert.Equal(t, 900.0, first.Duration)
	assert.True(t, first.HasDuration)
	assert.Equal(t, "Male", first.Gender)
	assert.Equal(t, 1985, first.BirthYear)
	assert.True(t, first.HasBirthYear)
	assert.Equal(t, 0, first.OriginalIndex)

	last := table.Trips[5]
	assert.Equal(t, 23, last.Hour)
	assert.False(t, last.HasDuration)
	assert.False(t, last.HasBirthYear)
	assert.Empty(t, last.Gender)
	assert.Equal(t, 5, last.OriginalIndex)
}

func TestLoadKeepsOriginalIndexAfterFilter(t *testing.T) {
	table, _, err := testLoader().Load(Selection{City: Chicago, Month: time.June})
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, 3, table.Trips[0].OriginalIndex)
	assert.Equal(t, "304487", table.Trips[0].Cells[0])
}

func TestLoadOptionalColumns(t *testing.T) {
	chicago, _, err := testLoader().Load(Selection{City: Chicago})
	require.NoError(t, err)
	assert.True(t, chicago.Has(ColGender))
	assert.True(t, chicago.Has(ColBirthYear))

	washington, _, err := testLoader().Load(Selection{City: Washington})
	require.NoError(t, err)
	assert.False(t, washington.Has(ColGender))
	assert.False(t, washington.Has(ColBirthYear))
	assert.True(t, washington.Has(ColTripDuration))
	assert.InDelta(t, 489.066, washington.Trips[0].Duration, 1e-9)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := NewLoader(t.TempDir()).Load(Selection{City: NewYork})
	require.Error(t, err)

	var dae *DataAccessError
	require.True(t, errors.As(err, &dae))
	assert.Equal(t, NewYork, dae.City)
	assert.True(t, strings.HasSuffix(dae.Path, "new_york_city.csv"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestReadTableRejectsMissingRequiredColumn(t *testing.T) {
	_, err := ReadTable(Chicago, strings.NewReader("Start Time,End Station\n2017-01-01 00:00:00,A\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing required column "Trip Duration"`)
}

func TestReadTableRejectsBadTimestamp(t *testing.T) {
	csv := "Start Time,Trip Duration,Start Station,End Station,User Type\n" +
		"yesterday,10,A,B,Subscriber\n"
	_, err := ReadTable(Chicago, strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 1")
}

func TestReadTableHeaderWithBOM(t *testing.T) {
	csv := "\ufeffStart Time,Trip Duration,Start Station,End Station,User Type\n" +
		"2017-01-01 00:07:57,10,A,B,Subscriber\n"
	table, err := ReadTable(Washington, strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())
	assert.Equal(t, time.Sunday, table.Trips[0].Weekday)
	assert.Equal(t, 0, table.Trips[0].Hour)
}

func TestPage(t *testing.T) {
	table, _, err := testLoader().Load(Selection{City: Chicago})
	require.NoError(t, err)

	assert.Len(t, table.Page(0, 5), 5)
	assert.Len(t, table.Page(5, 5), 1)
	assert.Empty(t, table.Page(10, 5))
}
