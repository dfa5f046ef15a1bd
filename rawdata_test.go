package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataDir = "dataset/testdata"

// source ids of the six chicago fixture rows, in file order
var chicagoIDs = []string{"1423854", "955915", "9031", "304487", "45207", "1473887"}

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func loadChicago(t *testing.T) *dataset.Table {
	t.Helper()
	table, _, err := dataset.NewLoader(testDataDir).Load(dataset.Selection{City: dataset.Chicago})
	require.NoError(t, err)
	return table
}

// pages splits viewer output on the question, dropping the text before the first one.
func pages(out string) []string {
	parts := strings.Split(out, rawDataQuestion+"\n")
	return parts[1:]
}

func TestViewRawDataPaginates(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("yes\n Yes \nno\n"), &out)

	require.NoError(t, viewRawData(c, loadChicago(t)))

	got := pages(out.String())
	require.Len(t, got, 3)
	for _, id := range chicagoIDs[:5] {
		assert.Contains(t, got[0], id)
		assert.NotContains(t, got[1], id)
	}
	assert.NotContains(t, got[0], chicagoIDs[5])
	assert.Contains(t, got[1], chicagoIDs[5])
	assert.Empty(t, got[2])
}

func TestViewRawDataStopsOnAnythingButYes(t *testing.T) {
	for _, answer := range []string{"no", "y", "", "maybe"} {
		var out bytes.Buffer
		c := prompt.NewConsole(strings.NewReader(answer+"\nyes\n"), &out)

		require.NoError(t, viewRawData(c, loadChicago(t)), answer)
		got := pages(out.String())
		require.Len(t, got, 1, answer)
		assert.Empty(t, got[0], answer)
	}
}

func TestViewRawDataPastTheEnd(t *testing.T) {
	var out bytes.Buffer
	c := prompt.NewConsole(strings.NewReader("yes\nyes\nyes\nno\n"), &out)

	require.NoError(t, viewRawData(c, loadChicago(t)))
	got := pages(out.String())
	require.Len(t, got, 4)
	assert.Contains(t, got[2], "No more records to show.")
}

func TestViewRawDataInputClosed(t *testing.T) {
	c := prompt.NewConsole(strings.NewReader("yes\n"), &bytes.Buffer{})
	err := viewRawData(c, loadChicago(t))
	assert.True(t, errors.Is(err, prompt.ErrInputClosed))
}

func TestRenderPageColumns(t *testing.T) {
	table := loadChicago(t)
	page := renderPage(table.Header, table.Page(0, 1))

	for _, title := range []string{"Row", "Id", "Start Time", "Trip Duration", "Start Station", "Birth Year", "Month", "Weekday", "Hour"} {
		assert.Contains(t, page, title)
	}
	assert.Contains(t, page, "Clark St & Lincoln Ave")
	assert.Contains(t, page, "Tuesday")
	assert.Contains(t, page, "2017-05-02 08:15:00")
}

func TestRenderPageKeepsLongCells(t *testing.T) {
	station := "Smithsonian-National Mall / Jefferson Dr & 12th St SW"
	header := []string{"Start Time", "Start Station"}
	trips := []dataset.Trip{{
		Cells:   []string{"2017-06-21 08:36:34", station},
		Month:   6,
		Weekday: 3,
		Hour:    8,
	}}

	page := renderPage(header, trips)
	assert.Contains(t, page, station)
	assert.NotContains(t, page, "…")
	assert.Contains(t, page, "Wednesday")
}
