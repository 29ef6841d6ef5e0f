package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidCheckIn      = errors.New("invalid check-in data")
	ErrCheckInBeforeStart  = errors.New("check-in date is before the habit start date")
	ErrCheckInAlreadyExist = errors.New("habit already checked in for this date")
)

// CheckIn records that a habit was done on a calendar date local to the user.
type CheckIn struct {
	ID      string    `json:"id" db:"id"`
	HabitID string    `json:"habit_id" db:"habit_id"`
	UserID  string    `json:"user_id" db:"user_id"`
	Date    time.Time `json:"date" db:"date"`
	Value   int       `json:"value" db:"value"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func NewCheckIn(habitID, userID string, date time.Time, value int) *CheckIn {
	return &CheckIn{
		HabitID:   habitID,
		UserID:    userID,
		Date:      CivilDate(date),
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
}

func (c *CheckIn) Validate() error {
	if strings.TrimSpace(c.HabitID) == "" {
		return fmt.Errorf("%w: habit_id is required", ErrInvalidCheckIn)
	}
	if strings.TrimSpace(c.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidCheckIn)
	}
	if c.Value < 0 {
		return fmt.Errorf("%w: value cannot be negative", ErrInvalidCheckIn)
	}
	if c.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidCheckIn)
	}
	return nil
}

// ValidateFor checks the check-in against the habit it is logged for.
func (c *CheckIn) ValidateFor(h *Habit) error {
	if h.IsArchived() {
		return ErrHabitArchived
	}
	if c.Date.Before(h.StartDate) {
		return ErrCheckInBeforeStart
	}
	return nil
}
