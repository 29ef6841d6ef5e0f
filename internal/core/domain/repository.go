package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrHabitNotFound   = errors.New("habit not found")
	ErrHabitConflict   = errors.New("habit version conflict")
	ErrCheckInNotFound = errors.New("check-in not found")
)

type HabitRepository interface {
	// Create persists a new habit definition in the storage.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by its unique identifier.
	GetByID(ctx context.Context, id string) (*Habit, error)

	// ListByUserID retrieves every habit of a user, archived ones included.
	ListByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// ListActiveByUserID retrieves the non-archived habits of a user.
	// This is the habit source of the statistics engine.
	ListActiveByUserID(ctx context.Context, userID string) ([]*Habit, error)

	// Update modifies the state of an existing habit.
	// Implementations must reject stale versions with ErrHabitConflict.
	Update(ctx context.Context, habit *Habit) error

	// Delete permanently removes a habit and, by cascade, its check-ins.
	Delete(ctx context.Context, id string) error
}

type CheckInRepository interface {
	// Create persists a new check-in. A second check-in for the same
	// (user, habit, date) must fail with ErrCheckInAlreadyExist.
	Create(ctx context.Context, checkIn *CheckIn) error

	// GetByID retrieves a single check-in.
	GetByID(ctx context.Context, id string) (*CheckIn, error)

	// Delete removes a check-in owned by userID.
	Delete(ctx context.Context, id string, userID string) error

	// ListByHabitID retrieves the check-ins of a habit with from <= date <= to.
	ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*CheckIn, error)

	// ListByUserIDAndDateRange retrieves every check-in of a user with
	// from <= date <= to, across all habits.
	ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*CheckIn, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateTimezone(ctx context.Context, id, timezone string) error
}
