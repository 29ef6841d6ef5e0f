package domain

import (
	"fmt"
	"time"

	// Zone lookups must not depend on the host having tzdata installed.
	_ "time/tzdata"
)

// DateLayout is the wire format of every calendar date in the API.
const DateLayout = "2006-01-02"

// CivilDate drops the clock part of t, keeping the calendar date as seen in t's
// own location. The result is midnight UTC so dates compare and hash uniformly.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
