package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrHabitNameEmpty     = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong   = errors.New("habit name is too long (max 100 chars)")
	ErrHabitDescTooLong   = errors.New("habit description is too long (max 500 chars)")
	ErrHabitInvalidUserID = errors.New("invalid user id")
	ErrInvalidGoalType    = errors.New("invalid goal type (must be DAILY or X_PER_WEEK)")
	ErrInvalidTarget      = errors.New("target per period must be between 1 and 7")
	ErrHabitArchived      = errors.New("habit is archived")
	ErrInvalidDate        = errors.New("invalid date (expected YYYY-MM-DD)")
)

// GoalType is the cadence a habit is measured against.
type GoalType string

const (
	GoalDaily    GoalType = "DAILY"
	GoalXPerWeek GoalType = "X_PER_WEEK"
)

const (
	MaxNameLen        = 100
	MaxDescLen        = 500
	MaxWeeklyTarget   = 7
	defaultDailyGoals = 1
)

// ParseGoalType accepts the goal type tag case-insensitively.
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(strings.ToUpper(strings.TrimSpace(s))) {
	case GoalDaily:
		return GoalDaily, nil
	case GoalXPerWeek:
		return GoalXPerWeek, nil
	default:
		return "", ErrInvalidGoalType
	}
}

type Habit struct {
	ID              string     `json:"id" db:"id"`
	UserID          string     `json:"user_id" db:"user_id"`
	Name            string     `json:"name" db:"name"`
	Description     string     `json:"description" db:"description"`
	GoalType        GoalType   `json:"goal_type" db:"goal_type"`
	TargetPerPeriod int        `json:"target_per_period" db:"target_per_period"`
	StartDate       time.Time  `json:"start_date" db:"start_date"`
	ArchivedAt      *time.Time `json:"archived_at,omitempty" db:"archived_at"`
	Version         int        `json:"version" db:"version"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

func validateAndNormalize(name, desc string, goal GoalType, target int) (int, error) {
	if name == "" {
		return 0, ErrHabitNameEmpty
	}
	if len(name) > MaxNameLen {
		return 0, ErrHabitNameTooLong
	}
	if len(desc) > MaxDescLen {
		return 0, ErrHabitDescTooLong
	}

	switch goal {
	case GoalDaily:
		return defaultDailyGoals, nil
	case GoalXPerWeek:
		if target < 1 || target > MaxWeeklyTarget {
			return 0, ErrInvalidTarget
		}
		return target, nil
	default:
		return 0, ErrInvalidGoalType
	}
}

// NewHabit builds a validated habit. startDate is reduced to its calendar date.
func NewHabit(userID, name, description string, goal GoalType, target int, startDate time.Time) (*Habit, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrHabitInvalidUserID
	}

	cleanName := strings.TrimSpace(name)
	cleanDesc := strings.TrimSpace(description)

	safeTarget, err := validateAndNormalize(cleanName, cleanDesc, goal, target)
	if err != nil {
		return nil, err
	}

	if startDate.IsZero() {
		return nil, ErrInvalidDate
	}

	now := time.Now().UTC()

	return &Habit{
		ID:              uuid.New().String(),
		UserID:          userID,
		Name:            cleanName,
		Description:     cleanDesc,
		GoalType:        goal,
		TargetPerPeriod: safeTarget,
		StartDate:       CivilDate(startDate),
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

func (h *Habit) IsArchived() bool {
	return h.ArchivedAt != nil
}

func (h *Habit) Archive() {
	if h.ArchivedAt != nil {
		return
	}

	now := time.Now().UTC()
	h.ArchivedAt = &now
	h.UpdatedAt = now
}

func (h *Habit) Restore() {
	if h.ArchivedAt == nil {
		return
	}
	h.ArchivedAt = nil
	h.UpdatedAt = time.Now().UTC()
}
