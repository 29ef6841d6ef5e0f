package domain

type HabitStats struct {
	HabitID         string   `json:"habit_id"`
	Name            string   `json:"name"`
	GoalType        GoalType `json:"goal_type"`
	TargetPerPeriod int      `json:"target_per_period"`
	CompletionCount int      `json:"completion_count"`
	CompletionRate  float64  `json:"completion_rate"`
	CurrentStreak   int      `json:"current_streak"`
	BestStreak      int      `json:"best_streak"`
}

type StatsOverview struct {
	StartDate             string       `json:"start_date"`
	EndDate               string       `json:"end_date"`
	TotalHabits           int          `json:"total_habits"`
	ActiveHabits          int          `json:"active_habits"`
	TotalCheckIns         int          `json:"total_checkins"`
	OverallCompletionRate float64      `json:"overall_completion_rate"`
	Habits                []HabitStats `json:"habits"`
}

type HeatmapDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Heatmap struct {
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Total     int          `json:"total"`
	Max       int          `json:"max"`
	Days      []HeatmapDay `json:"days"`
}

type ConsistencyScore struct {
	StartDate         string  `json:"start_date"`
	EndDate           string  `json:"end_date"`
	Score             float64 `json:"score"`
	SuccessfulPeriods int     `json:"successful_periods"`
	TotalPeriods      int     `json:"total_periods"`
}
