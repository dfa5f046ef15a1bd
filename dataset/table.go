package dataset

import "time"

// Trip is one rental record. Month, Weekday and Hour are derived from
// Start when the table is loaded and never change afterwards.
type Trip struct {
	Start        time.Time
	StartStation string
	EndStation   string
	Duration     float64 // seconds
	HasDuration  bool
	UserType     string
	Gender       string
	BirthYear    int
	HasBirthYear bool

	Month   time.Month
	Weekday time.Weekday
	Hour    int

	Cells         []string // raw CSV cells, for the raw data viewer
	OriginalIndex int      // zero based data row in the source file
}

// Table is the loaded, filtered data of one city. Reporters only read it.
type Table struct {
	City   City
	Header []string
	Trips  []Trip

	columns columnIndex
}

// Len is the number of trips after filtering.
func (t *Table) Len() int { return len(t.Trips) }

// Has reports whether the source file exposes col.
func (t *Table) Has(col Column) bool {
	_, ok := t.columns[col]
	return ok
}

// Page returns up to size trips starting at offset. Past the end it is empty.
func (t *Table) Page(offset, size int) []Trip {
	if offset < 0 || offset >= len(t.Trips) || size <= 0 {
		return nil
	}
	end := min(offset+size, len(t.Trips))
	return t.Trips[offset:end]
}
