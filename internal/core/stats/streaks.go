package stats

import (
	"sort"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

// DateSet is a set of civil dates.
type DateSet map[time.Time]struct{}

// NewDateSet deduplicates dates by calendar day.
func NewDateSet(dates []time.Time) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		set[domain.CivilDate(d)] = struct{}{}
	}
	return set
}

func (s DateSet) Has(d time.Time) bool {
	_, ok := s[d]
	return ok
}

func (s DateSet) sorted() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Before(out[j])
	})
	return out
}

// DailyStreaks computes streaks for a DAILY habit. The current streak counts
// back from today and is zero when today has no hit.
func DailyStreaks(dates []time.Time, today time.Time) (current, best int) {
	hits := NewDateSet(dates)
	if len(hits) == 0 {
		return 0, 0
	}

	for d := domain.CivilDate(today); hits.Has(d); d = addDays(d, -1) {
		current++
	}

	return current, longestRun(hits.sorted(), 1)
}

// WeeklyStreaks computes streaks, in weeks, for an X_PER_WEEK habit.
//
// The week containing today counts once it has reached target. Until then the
// current streak starts from the previous week.
func WeeklyStreaks(dates []time.Time, today time.Time, target int) (current, best int) {
	hits := NewDateSet(dates)
	if len(hits) == 0 {
		return 0, 0
	}
	if target < 1 {
		target = 1
	}

	buckets := BucketByWeek(hits)

	week := WeekStart(today)
	if !buckets.Successful(week, target) {
		week = addDays(week, -7)
	}
	for ; buckets.Successful(week, target); week = addDays(week, -7) {
		current++
	}

	best = longestRun(buckets.SuccessfulWeeks(target), 7)
	if current > best {
		best = current
	}
	return current, best
}

// longestRun returns the longest chain in sorted where each element is step
// days after the previous one.
func longestRun(sorted []time.Time, step int) int {
	if len(sorted) == 0 {
		return 0
	}

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if daysBetween(sorted[i-1], sorted[i]) == step {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
