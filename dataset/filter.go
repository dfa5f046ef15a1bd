package dataset

func includeTrip(t Trip, sel Selection) bool {
	if sel.Month != 0 && t.Month != sel.Month {
		return false
	}
	if sel.HasDay && t.Weekday != sel.Day {
		return false
	}
	return true
}

// filterTrips keeps the trips matching sel, preserving order.
func filterTrips(trips []Trip, sel Selection) []Trip {
	if sel.Month == 0 && !sel.HasDay {
		return trips
	}
	out := make([]Trip, 0, len(trips))
	for _, t := range trips {
		if includeTrip(t, sel) {
			out = append(out, t)
		}
	}
	return out
}
