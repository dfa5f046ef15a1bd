// Package stats computes the descriptive statistics shown for a filtered
// trip table. Reporters never modify the table they are given.
package stats

import (
	"cmp"
	"time"

	"github.com/andareed/siftly-bikeshare/dataset"
	"github.com/andareed/siftly-bikeshare/logging"
)

type TimeOfTravel struct {
	Month        time.Month
	MonthCount   int
	Weekday      time.Weekday
	WeekdayCount int
	Hour         int
	HourCount    int
	Elapsed      time.Duration
}

// ComputeTimeOfTravel finds the most common month, weekday and start hour.
func ComputeTimeOfTravel(t *dataset.Table) (TimeOfTravel, error) {
	start := time.Now()
	var r TimeOfTravel
	var ok bool

	months := countBy(t.Trips, func(tr dataset.Trip) (time.Month, bool) { return tr.Month, true })
	if r.Month, r.MonthCount, ok = modeOf(months, cmp.Compare[time.Month]); !ok {
		return r, &EmptyDatasetError{Statistic: "most common month"}
	}

	// weekdays tie-break on their names, like any other text column
	days := countBy(t.Trips, func(tr dataset.Trip) (time.Weekday, bool) { return tr.Weekday, true })
	if r.Weekday, r.WeekdayCount, ok = modeOf(days, func(a, b time.Weekday) int {
		return cmp.Compare(a.String(), b.String())
	}); !ok {
		return r, &EmptyDatasetError{Statistic: "most common day of week"}
	}

	hours := countBy(t.Trips, func(tr dataset.Trip) (int, bool) { return tr.Hour, true })
	if r.Hour, r.HourCount, ok = modeOf(hours, cmp.Compare[int]); !ok {
		return r, &EmptyDatasetError{Statistic: "most common start hour"}
	}

	r.Elapsed = time.Since(start)
	logging.Debugf("time of travel over %d trips took %s", t.Len(), r.Elapsed)
	return r, nil
}

// StationPair is a start and end station taken together.
type StationPair struct {
	Start string
	End   string
}

func comparePairs(a, b StationPair) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}

type Stations struct {
	Start      string
	StartCount int
	End        string
	EndCount   int
	Pair       StationPair
	PairCount  int
	Elapsed    time.Duration
}

// ComputeStations finds the most common start station, end station and trip.
func ComputeStations(t *dataset.Table) (Stations, error) {
	start := time.Now()
	var r Stations
	var ok bool

	starts := countBy(t.Trips, func(tr dataset.Trip) (string, bool) { return nonEmpty(tr.StartStation) })
	if r.Start, r.StartCount, ok = modeOf(starts, cmp.Compare[string]); !ok {
		return r, &EmptyDatasetError{Statistic: "most common start station"}
	}

	ends := countBy(t.Trips, func(tr dataset.Trip) (string, bool) { return nonEmpty(tr.EndStation) })
	if r.End, r.EndCount, ok = modeOf(ends, cmp.Compare[string]); !ok {
		return r, &EmptyDatasetError{Statistic: "most common end station"}
	}

	pairs := countBy(t.Trips, func(tr dataset.Trip) (StationPair, bool) {
		return StationPair{Start: tr.StartStation, End: tr.EndStation}, tr.StartStation != "" && tr.EndStation != ""
	})
	if r.Pair, r.PairCount, ok = modeOf(pairs, comparePairs); !ok {
		return r, &EmptyDatasetError{Statistic: "most frequent trip"}
	}

	r.Elapsed = time.Since(start)
	logging.Debugf("station stats over %d trips took %s", t.Len(), r.Elapsed)
	return r, nil
}

type TripDuration struct {
	Total   float64 // seconds
	Count   int     // trips with a duration
	Mean    float64
	Elapsed time.Duration
}

// ComputeTripDuration sums the durations that are present and averages them.
func ComputeTripDuration(t *dataset.Table) (TripDuration, error) {
	start := time.Now()
	var r TripDuration
	for _, tr := range t.Trips {
		if !tr.HasDuration {
			continue
		}
		r.Total += tr.Duration
		r.Count++
	}
	if r.Count == 0 {
		return r, &EmptyDatasetError{Statistic: "average travel time"}
	}
	r.Mean = r.Total / float64(r.Count)

	r.Elapsed = time.Since(start)
	logging.Debugf("trip duration over %d trips took %s", t.Len(), r.Elapsed)
	return r, nil
}

type Users struct {
	City      dataset.City
	UserTypes []CategoryCount

	GenderAvailable bool
	Genders         []CategoryCount

	BirthYearAvailable bool
	EarliestBirthYear  int
	LatestBirthYear    int
	CommonBirthYear    int

	Elapsed time.Duration
}

// ComputeUsers counts user types and, where the city's data has them,
// genders and birth years.
func ComputeUsers(t *dataset.Table, city dataset.City) (Users, error) {
	start := time.Now()
	r := Users{City: city}

	r.UserTypes = valueCounts(countBy(t.Trips, func(tr dataset.Trip) (string, bool) { return nonEmpty(tr.UserType) }))

	if t.Has(dataset.ColGender) {
		r.GenderAvailable = true
		r.Genders = valueCounts(countBy(t.Trips, func(tr dataset.Trip) (string, bool) { return nonEmpty(tr.Gender) }))
	} else {
		logging.Infof("%s has no gender column", city)
	}

	if t.Has(dataset.ColBirthYear) {
		if t.Len() == 0 {
			return r, &EmptyDatasetError{Statistic: "earliest year of birth"}
		}
		r.BirthYearAvailable = birthYears(t.Trips, &r)
	} else {
		logging.Infof("%s has no birth year column", city)
	}

	r.Elapsed = time.Since(start)
	logging.Debugf("user stats over %d trips took %s", t.Len(), r.Elapsed)
	return r, nil
}

// birthYears fills the birth year fields and reports whether any trip had one.
func birthYears(trips []dataset.Trip, r *Users) bool {
	years := countBy(trips, func(tr dataset.Trip) (int, bool) { return tr.BirthYear, tr.HasBirthYear })
	if len(years) == 0 {
		return false
	}
	first := true
	for y := range years {
		if first || y < r.EarliestBirthYear {
			r.EarliestBirthYear = y
		}
		if first || y > r.LatestBirthYear {
			r.LatestBirthYear = y
		}
		first = false
	}
	r.CommonBirthYear, _, _ = modeOf(years, cmp.Compare[int])
	return true
}
