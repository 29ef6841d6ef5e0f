package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var ErrInvalidWindow = errors.New("invalid stats window")

// DefaultRangeDays is the window length used for unknown range tokens.
const DefaultRangeDays = 30

const DefaultRange = "30d"

var rangeDays = map[string]int{
	"7d":   7,
	"30d":  30,
	"90d":  90,
	"180d": 180,
	"365d": 365,
}

// Window is an inclusive range of calendar dates.
type Window struct {
	Start time.Time
	End   time.Time
}

// ParseRange maps a range token to its length in days. Unknown tokens report
// known=false and the default length.
func ParseRange(token string) (days int, known bool) {
	if d, ok := rangeDays[token]; ok {
		return d, true
	}
	return DefaultRangeDays, false
}

// ResolveWindow builds the window of the given range ending today.
func ResolveWindow(token string, today time.Time) Window {
	days, _ := ParseRange(token)
	end := domain.CivilDate(today)
	return Window{
		Start: addDays(end, -(days - 1)),
		End:   end,
	}
}

func (w Window) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return fmt.Errorf("%w: missing bounds", ErrInvalidWindow)
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: end %s before start %s", ErrInvalidWindow,
			domain.FormatDate(w.End), domain.FormatDate(w.Start))
	}
	return nil
}

// Days is the number of calendar days in the window.
func (w Window) Days() int {
	return daysBetween(w.Start, w.End) + 1
}

func (w Window) Contains(d time.Time) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// EffectiveStart is the later of the window start and the habit start. ok is
// false when the habit starts after the window ends.
func (w Window) EffectiveStart(habitStart time.Time) (start time.Time, ok bool) {
	start = w.Start
	if hs := domain.CivilDate(habitStart); hs.After(start) {
		start = hs
	}
	if start.After(w.End) {
		return time.Time{}, false
	}
	return start, true
}

// Clip narrows the window to the habit's lifetime.
func (w Window) Clip(habitStart time.Time) (Window, bool) {
	start, ok := w.EffectiveStart(habitStart)
	if !ok {
		return Window{}, false
	}
	return Window{Start: start, End: w.End}, true
}

// Weeks is the number of Monday-start week buckets touched by the window.
func (w Window) Weeks() int {
	return daysBetween(WeekStart(w.Start), WeekStart(w.End))/7 + 1
}
