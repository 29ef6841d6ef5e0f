package stats

import (
	"sort"
	"time"
)

// WeekBuckets counts distinct hit dates per week, keyed by the week's Monday.
type WeekBuckets map[time.Time]int

// BucketByWeek groups a set of hit dates into weeks.
func BucketByWeek(hits DateSet) WeekBuckets {
	buckets := make(WeekBuckets)
	for d := range hits {
		buckets[WeekStart(d)]++
	}
	return buckets
}

// Successful reports whether the week starting at weekStart met target.
func (b WeekBuckets) Successful(weekStart time.Time, target int) bool {
	return b[weekStart] >= target
}

// SuccessfulWeeks returns the sorted week starts that met target.
func (b WeekBuckets) SuccessfulWeeks(target int) []time.Time {
	weeks := make([]time.Time, 0, len(b))
	for w, n := range b {
		if n >= target {
			weeks = append(weeks, w)
		}
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Before(weeks[j])
	})
	return weeks
}

// CountSuccessful counts the successful weeks with from <= week start <= to.
func (b WeekBuckets) CountSuccessful(from, to time.Time, target int) int {
	n := 0
	for w := WeekStart(from); !w.After(to); w = addDays(w, 7) {
		if b.Successful(w, target) {
			n++
		}
	}
	return n
}
