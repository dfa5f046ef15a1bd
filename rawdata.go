package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/andareed/siftly-bikeshare/logging"
	"github.com/andareed/siftly-bikeshare/prompt"
	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"
)

const (
	recordsPerPage  = 5
	rawDataQuestion = "Would you like to view next 5 records raw data? Enter yes or no."
)

// viewRawData shows the filtered trips five at a time for as long as the
// user answers yes.
func viewRawData(c *prompt.Console, t *dataset.Table) error {
	for offset := 0; ; offset += recordsPerPage {
		more, err := c.Confirm(rawDataQuestion)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		logging.Debugf("Raw data page at offset %d of %d", offset, t.Len())
		fmt.Fprintln(c.Out(), renderPage(t.Header, t.Page(offset, recordsPerPage)))
	}
}

// renderPage lays out trips under the source header plus the derived columns.
func renderPage(header []string, trips []dataset.Trip) string {
	if len(trips) == 0 {
		return endStyle.Render("No more records to show.")
	}

	titles := make([]string, 0, len(header)+4)
	titles = append(titles, "Row")
	for _, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if h == "" {
			h = "Id"
		}
		titles = append(titles, h)
	}
	titles = append(titles, "Month", "Weekday", "Hour")

	rows := make([]table.Row, 0, len(trips))
	for _, trip := range trips {
		row := make(table.Row, 0, len(titles))
		row = append(row, strconv.Itoa(trip.OriginalIndex))
		for i := range header {
			cell := ""
			if i < len(trip.Cells) {
				cell = trip.Cells[i]
			}
			row = append(row, cell)
		}
		row = append(row, strconv.Itoa(int(trip.Month)), trip.Weekday.String(), strconv.Itoa(trip.Hour))
		rows = append(rows, row)
	}

	// columns are as wide as their widest cell so nothing is cut short
	cols := make([]table.Column, len(titles))
	total := 0
	for i, title := range titles {
		w := runewidth.StringWidth(title)
		for _, row := range rows {
			w = max(w, runewidth.StringWidth(row[i]))
		}
		cols[i] = table.Column{Title: title, Width: w}
		total += cols[i].Width + rawCellStyle.GetHorizontalPadding()
	}

	tbl := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithStyles(rawTableStyles()),
		table.WithWidth(total),
		// header takes two lines with its bottom border
		table.WithHeight(len(rows)+2),
	)
	return tbl.View()
}
