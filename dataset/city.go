package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type City string

const (
	Chicago    City = "chicago"
	NewYork    City = "newyork"
	Washington City = "washington"
)

// Cities is the fixed set of supported cities, in prompt order.
var Cities = []City{Chicago, NewYork, Washington}

var cityFiles = map[City]string{
	Chicago:    "chicago.csv",
	NewYork:    "new_york_city.csv",
	Washington: "washington.csv",
}

var cityNames = map[City]string{
	Chicago:    "Chicago",
	NewYork:    "New York City",
	Washington: "Washington",
}

// ParseCity maps a normalized answer to a City.
func ParseCity(s string) (City, bool) {
	c := City(s)
	_, ok := cityFiles[c]
	return c, ok
}

// File is the CSV file name backing the city.
func (c City) File() string { return cityFiles[c] }

// DisplayName is the human readable city name.
func (c City) DisplayName() string {
	if n, ok := cityNames[c]; ok {
		return n
	}
	return string(c)
}

// Months that can be filtered on. The bundled data only covers January to June.
var Months = []time.Month{time.January, time.February, time.March, time.April, time.May, time.June}

// ParseMonth accepts a normalized month name, january through june.
func ParseMonth(s string) (time.Month, bool) {
	for _, m := range Months {
		if strings.ToLower(m.String()) == s {
			return m, true
		}
	}
	return 0, false
}

// ParseDayCode maps "1".."7" to Sunday..Saturday.
func ParseDayCode(s string) (time.Weekday, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '7' {
		return 0, false
	}
	return time.Weekday(s[0] - '1'), true
}

// Selection is a validated city plus optional month and day filters.
type Selection struct {
	City   City
	Month  time.Month // zero when unfiltered
	Day    time.Weekday
	HasDay bool
}

// filters renders the month and day filters, using none for an unset one.
func (s Selection) filters(none string, month func(time.Month) string, day func(time.Weekday) string) (string, string) {
	m, d := none, none
	if s.Month != 0 {
		m = month(s.Month)
	}
	if s.HasDay {
		d = day(s.Day)
	}
	return m, d
}

// Answers is the selection in the normalized form it was typed in: city
// key, lower-case month name and day code, with "None" for an unset filter.
func (s Selection) Answers() (city, month, day string) {
	month, day = s.filters("None",
		func(m time.Month) string { return strings.ToLower(m.String()) },
		func(d time.Weekday) string { return strconv.Itoa(int(d) + 1) },
	)
	return string(s.City), month, day
}

func (s Selection) String() string {
	city, month, day := s.Answers()
	return fmt.Sprintf("city=%s month=%s day=%s", city, month, day)
}

// Description says which filters were applied, for display only.
type Description struct {
	Month string
	Day   string
}

func describe(sel Selection) Description {
	month, day := sel.filters("No", time.Month.String, time.Weekday.String)
	return Description{Month: month, Day: day}
}

func (d Description) String() string {
	return fmt.Sprintf("month: %s, day: %s", d.Month, d.Day)
}
