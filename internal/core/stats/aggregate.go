package stats

import (
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

// Request is the input shared by Overview, Heatmap and Consistency. Today
// must be resolved once per request and Window built from it.
type Request struct {
	Today    time.Time
	Window   Window
	Habits   []*domain.Habit
	CheckIns []*domain.CheckIn
}

// period is the per-habit tally of successful and possible periods.
type period struct {
	successful int
	total      int
}

// eligibleHabits keeps non-archived habits that have started by the end of
// the window, in input order. total counts every non-archived habit.
func (r Request) eligibleHabits() (eligible []*domain.Habit, total int) {
	for _, h := range r.Habits {
		if h == nil || h.IsArchived() {
			continue
		}
		total++
		if !domain.CivilDate(h.StartDate).After(r.Window.End) {
			eligible = append(eligible, h)
		}
	}
	return eligible, total
}

// hitsByHabit partitions the check-ins that fall inside the window.
func (r Request) hitsByHabit() map[string][]time.Time {
	hits := make(map[string][]time.Time)
	for _, c := range r.CheckIns {
		if c == nil {
			continue
		}
		d := domain.CivilDate(c.Date)
		if !r.Window.Contains(d) {
			continue
		}
		hits[c.HabitID] = append(hits[c.HabitID], d)
	}
	return hits
}

// hitSet returns the habit's distinct hit dates within w.
func hitSet(dates []time.Time, w Window) DateSet {
	set := make(DateSet, len(dates))
	for _, d := range dates {
		if w.Contains(d) {
			set[d] = struct{}{}
		}
	}
	return set
}

func (s DateSet) dates() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	return out
}

// Overview builds per-habit stats and the overall completion rate.
//
// DAILY completion rates are measured against the whole window. X_PER_WEEK
// habits report their successful weeks as completion_count and fold the real
// rate into the overall aggregate only; their per-habit completion_rate stays 0.
func Overview(req Request) (*domain.StatsOverview, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}

	habits, total := req.eligibleHabits()
	byHabit := req.hitsByHabit()

	out := &domain.StatsOverview{
		StartDate:    domain.FormatDate(req.Window.Start),
		EndDate:      domain.FormatDate(req.Window.End),
		TotalHabits:  total,
		ActiveHabits: len(habits),
		Habits:       make([]domain.HabitStats, 0, len(habits)),
	}

	var completed, possible int

	for _, h := range habits {
		clipped, ok := req.Window.Clip(h.StartDate)
		if !ok {
			return nil, fmt.Errorf("%w: habit %s starts after window end", ErrInvalidWindow, h.ID)
		}
		hits := hitSet(byHabit[h.ID], clipped)
		out.TotalCheckIns += len(byHabit[h.ID])

		hs := domain.HabitStats{
			HabitID:         h.ID,
			Name:            h.Name,
			GoalType:        h.GoalType,
			TargetPerPeriod: h.TargetPerPeriod,
		}

		switch h.GoalType {
		case domain.GoalDaily:
			days := req.Window.Days()
			hs.CompletionCount = len(hits)
			hs.CompletionRate = ratio(len(hits), days)
			hs.CurrentStreak, hs.BestStreak = DailyStreaks(hits.dates(), req.Today)

			completed += len(hits)
			possible += days

		case domain.GoalXPerWeek:
			buckets := BucketByWeek(hits)
			weeks := clipped.Weeks()
			successful := buckets.CountSuccessful(clipped.Start, clipped.End, h.TargetPerPeriod)

			hs.CompletionCount = successful
			hs.CompletionRate = 0
			hs.CurrentStreak, hs.BestStreak = WeeklyStreaks(hits.dates(), req.Today, h.TargetPerPeriod)

			completed += successful
			possible += weeks

		default:
			return nil, fmt.Errorf("%w: habit %s has goal type %q", domain.ErrInvalidGoalType, h.ID, h.GoalType)
		}

		out.Habits = append(out.Habits, hs)
	}

	out.OverallCompletionRate = ratio(completed, possible)
	return out, nil
}

// Heatmap counts check-ins of every habit per day, one entry per day of the
// window in chronological order.
func Heatmap(req Request) (*domain.Heatmap, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}

	counts := make(map[time.Time]int)
	for _, c := range req.CheckIns {
		if c == nil {
			continue
		}
		d := domain.CivilDate(c.Date)
		if req.Window.Contains(d) {
			counts[d]++
		}
	}

	out := &domain.Heatmap{
		StartDate: domain.FormatDate(req.Window.Start),
		EndDate:   domain.FormatDate(req.Window.End),
		Days:      make([]domain.HeatmapDay, 0, req.Window.Days()),
	}

	for d := req.Window.Start; !d.After(req.Window.End); d = addDays(d, 1) {
		n := counts[d]
		out.Days = append(out.Days, domain.HeatmapDay{Date: domain.FormatDate(d), Count: n})
		out.Total += n
		if n > out.Max {
			out.Max = n
		}
	}

	return out, nil
}

// Consistency scores the share of successful periods across all eligible
// habits: days for DAILY, weeks for X_PER_WEEK, both from the effective start.
func Consistency(req Request) (*domain.ConsistencyScore, error) {
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}

	habits, _ := req.eligibleHabits()
	byHabit := req.hitsByHabit()

	var sum period
	for _, h := range habits {
		p, err := habitPeriods(h, req.Window, byHabit[h.ID])
		if err != nil {
			return nil, err
		}
		sum.successful += p.successful
		sum.total += p.total
	}

	return &domain.ConsistencyScore{
		StartDate:         domain.FormatDate(req.Window.Start),
		EndDate:           domain.FormatDate(req.Window.End),
		Score:             100 * ratio(sum.successful, sum.total),
		SuccessfulPeriods: sum.successful,
		TotalPeriods:      sum.total,
	}, nil
}

func habitPeriods(h *domain.Habit, w Window, dates []time.Time) (period, error) {
	clipped, ok := w.Clip(h.StartDate)
	if !ok {
		return period{}, nil
	}
	hits := hitSet(dates, clipped)

	switch h.GoalType {
	case domain.GoalDaily:
		return period{successful: len(hits), total: clipped.Days()}, nil
	case domain.GoalXPerWeek:
		buckets := BucketByWeek(hits)
		return period{
			successful: buckets.CountSuccessful(clipped.Start, clipped.End, h.TargetPerPeriod),
			total:      clipped.Weeks(),
		}, nil
	default:
		return period{}, fmt.Errorf("%w: habit %s has goal type %q", domain.ErrInvalidGoalType, h.ID, h.GoalType)
	}
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}
