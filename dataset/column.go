package dataset

import "strings"

type Column int

const (
	ColStartTime Column = iota
	ColEndTime
	ColTripDuration
	ColStartStation
	ColEndStation
	ColUserType
	ColGender
	ColBirthYear
	ColUnknown
)

var columnNames = map[Column]string{
	ColStartTime:    "Start Time",
	ColEndTime:      "End Time",
	ColTripDuration: "Trip Duration",
	ColStartStation: "Start Station",
	ColEndStation:   "End Station",
	ColUserType:     "User Type",
	ColGender:       "Gender",
	ColBirthYear:    "Birth Year",
}

// Every city file carries these. Gender and Birth Year are optional.
var requiredColumns = []Column{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

func (c Column) String() string {
	if n, ok := columnNames[c]; ok {
		return n
	}
	return "Unknown"
}

// detectColumn matches a CSV header cell to a known column.
func detectColumn(name string) Column {
	n := strings.TrimPrefix(strings.TrimSpace(name), "\ufeff")
	for col, want := range columnNames {
		if strings.EqualFold(n, want) {
			return col
		}
	}
	return ColUnknown
}

// columnIndex maps known columns to their position in the header.
type columnIndex map[Column]int

func indexHeader(header []string) columnIndex {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		col := detectColumn(name)
		if col == ColUnknown {
			continue
		}
		if _, seen := idx[col]; !seen {
			idx[col] = i
		}
	}
	return idx
}

func (idx columnIndex) cell(row []string, col Column) (string, bool) {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return "", false
	}
	v := strings.TrimSpace(row[i])
	return v, v != ""
}
