package stats

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/andareed/siftly-bikeshare/dataset"
)

// EmptyDatasetError is returned when a statistic that needs at least one
// value (mode, min, max, mean) is asked of an empty selection.
type EmptyDatasetError struct {
	Statistic string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("cannot compute %s: no trips match the selected filters", e.Statistic)
}

// countBy counts key(trip) over trips, skipping trips where key reports no value.
func countBy[K comparable](trips []dataset.Trip, key func(dataset.Trip) (K, bool)) map[K]int {
	counts := make(map[K]int)
	for _, t := range trips {
		if k, ok := key(t); ok {
			counts[k]++
		}
	}
	return counts
}

// modeOf returns the most frequent key and its count. Ties go to the key
// that sorts first under compare.
func modeOf[K comparable](counts map[K]int, compare func(a, b K) int) (K, int, bool) {
	var best K
	bestCount := 0
	for k, n := range counts {
		if n > bestCount || (n == bestCount && compare(k, best) < 0) {
			best, bestCount = k, n
		}
	}
	return best, bestCount, bestCount > 0
}

// CategoryCount is one row of a value count, e.g. "Subscriber: 1234".
type CategoryCount struct {
	Value string
	Count int
}

// valueCounts sorts counts by count descending, then value ascending.
func valueCounts(counts map[string]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, CategoryCount{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Value, b.Value)
	})
	return out
}

func nonEmpty(s string) (string, bool) { return s, s != "" }
