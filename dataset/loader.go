package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-bikeshare/logging"
)

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
	time.RFC3339,
}

// Loader reads city files from Dir.
type Loader struct {
	Dir string
}

func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{Dir: dir}
}

// Path is where the city's file is expected.
func (l *Loader) Path(c City) string {
	return filepath.Join(l.Dir, c.File())
}

// Load reads the city's file, derives month/weekday/hour and applies the
// month and day filters of sel.
func (l *Loader) Load(sel Selection) (*Table, Description, error) {
	desc := describe(sel)
	if _, ok := cityFiles[sel.City]; !ok {
		return nil, desc, &DataAccessError{City: sel.City, Err: fmt.Errorf("unknown city %q", sel.City)}
	}
	path := l.Path(sel.City)

	f, err := os.Open(path)
	if err != nil {
		return nil, desc, &DataAccessError{City: sel.City, Path: path, Err: err}
	}
	defer f.Close()

	t, err := ReadTable(sel.City, f)
	if err != nil {
		return nil, desc, &DataAccessError{City: sel.City, Path: path, Err: err}
	}
	loaded := t.Len()

	t.Trips = filterTrips(t.Trips, sel)
	logging.Infof("Loaded %s: %d rows, %d after filter (%s)", path, loaded, t.Len(), sel)
	if t.Len() == 0 {
		logging.Warnf("no %s trips match %s", sel.City, sel)
	}
	return t, desc, nil
}

// ReadTable parses a city CSV with a header row. Trips are not filtered.
func ReadTable(city City, r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("file has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}

	cols := indexHeader(header)
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("missing required column %q", c)
		}
	}
	for _, c := range []Column{ColGender, ColBirthYear} {
		if _, ok := cols[c]; !ok {
			logging.Debugf("%s has no %q column", city, c)
		}
	}

	t := &Table{City: city, Header: header, columns: cols}
	for i := 0; ; i++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		trip, err := parseTrip(cols, rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		trip.OriginalIndex = i
		t.Trips = append(t.Trips, trip)
	}
	return t, nil
}

func parseTrip(cols columnIndex, rec []string) (Trip, error) {
	trip := Trip{Cells: rec}

	raw, _ := cols.cell(rec, ColStartTime)
	start, err := parseStartTime(raw)
	if err != nil {
		return trip, err
	}
	trip.Start = start
	trip.Month = start.Month()
	trip.Weekday = start.Weekday()
	trip.Hour = start.Hour()

	trip.StartStation, _ = cols.cell(rec, ColStartStation)
	trip.EndStation, _ = cols.cell(rec, ColEndStation)
	trip.UserType, _ = cols.cell(rec, ColUserType)
	trip.Gender, _ = cols.cell(rec, ColGender)

	if v, ok := cols.cell(rec, ColTripDuration); ok {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return trip, fmt.Errorf("invalid %s %q", ColTripDuration, v)
		}
		trip.Duration = d
		trip.HasDuration = true
	}

	if v, ok := cols.cell(rec, ColBirthYear); ok {
		// exports write years as floats, e.g. "1992.0"
		y, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(y) {
			return trip, fmt.Errorf("invalid %s %q", ColBirthYear, v)
		}
		trip.BirthYear = int(y)
		trip.HasBirthYear = true
	}
	return trip, nil
}

func parseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty %s", ColStartTime)
	}
	for _, layout := range startTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid %s %q", ColStartTime, raw)
}
