package stats

import (
	"strings"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

// DefaultTimezone is used whenever a user's zone is missing or unusable.
const DefaultTimezone = domain.DefaultUserTimezone

// ResolveLocation never fails: unknown ids, empty ids and "Local" all map to
// DefaultTimezone.
func ResolveLocation(tz string) *time.Location {
	tz = strings.TrimSpace(tz)
	if tz == "" || tz == "Local" {
		return defaultLocation()
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return defaultLocation()
	}
	return loc
}

func defaultLocation() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today returns the calendar date of now as seen in tz.
func Today(tz string, now time.Time) time.Time {
	return domain.CivilDate(now.In(ResolveLocation(tz)))
}

func addDays(d time.Time, n int) time.Time {
	return d.AddDate(0, 0, n)
}

// daysBetween counts whole days from a to b. Both are civil dates.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	d = domain.CivilDate(d)
	offset := (int(d.Weekday()) + 6) % 7
	return addDays(d, -offset)
}
