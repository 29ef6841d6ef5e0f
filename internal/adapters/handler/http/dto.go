package http

import (
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

// Calendar dates leave the API as YYYY-MM-DD, never as timestamps.

type userResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Timezone string `json:"timezone"`
}

func newUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Timezone: u.Timezone}
}

type habitResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	GoalType        domain.GoalType `json:"goal_type"`
	TargetPerPeriod int             `json:"target_per_period"`
	StartDate       string          `json:"start_date"`
	Archived        bool            `json:"archived"`
	ArchivedAt      *time.Time      `json:"archived_at,omitempty"`
	Version         int             `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
}

func newHabitResponse(h *domain.Habit) habitResponse {
	return habitResponse{
		ID:              h.ID,
		Name:            h.Name,
		Description:     h.Description,
		GoalType:        h.GoalType,
		TargetPerPeriod: h.TargetPerPeriod,
		StartDate:       domain.FormatDate(h.StartDate),
		Archived:        h.IsArchived(),
		ArchivedAt:      h.ArchivedAt,
		Version:         h.Version,
		CreatedAt:       h.CreatedAt,
	}
}

func newHabitListResponse(list []*domain.Habit) []habitResponse {
	out := make([]habitResponse, 0, len(list))
	for _, h := range list {
		out = append(out, newHabitResponse(h))
	}
	return out
}

type checkInResponse struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Date      string    `json:"date"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func newCheckInResponse(c *domain.CheckIn) checkInResponse {
	return checkInResponse{
		ID:        c.ID,
		HabitID:   c.HabitID,
		Date:      domain.FormatDate(c.Date),
		Value:     c.Value,
		CreatedAt: c.CreatedAt,
	}
}
