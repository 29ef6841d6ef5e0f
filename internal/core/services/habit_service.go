package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

type HabitService struct {
	repo     domain.HabitRepository
	userRepo domain.UserRepository
	now      Clock
}

func NewHabitService(repo domain.HabitRepository, userRepo domain.UserRepository) *HabitService {
	return &HabitService{
		repo:     repo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

func (s *HabitService) WithClock(now Clock) *HabitService {
	s.now = now
	return s
}

type CreateHabitInput struct {
	UserID          string
	Name            string
	Description     string
	GoalType        string
	TargetPerPeriod int
	// StartDate defaults to today in the user's zone.
	StartDate *time.Time
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	goal, err := domain.ParseGoalType(input.GoalType)
	if err != nil {
		return nil, err
	}

	var start time.Time
	if input.StartDate != nil {
		start = *input.StartDate
	} else {
		_, today, err := userToday(ctx, s.userRepo, input.UserID, s.now())
		if err != nil {
			return nil, err
		}
		start = today
	}

	habit, err := domain.NewHabit(input.UserID, input.Name, input.Description, goal, input.TargetPerPeriod, start)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Habit, error) {
	if includeArchived {
		return s.repo.ListByUserID(ctx, userID)
	}
	return s.repo.ListActiveByUserID(ctx, userID)
}

// getOwned hides habits of other users behind ErrHabitNotFound.
func (s *HabitService) getOwned(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}
	return habit, nil
}

func (s *HabitService) Archive(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if habit.IsArchived() {
		return habit, nil
	}

	habit.Archive()
	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Restore(ctx context.Context, id, userID string) (*domain.Habit, error) {
	habit, err := s.getOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !habit.IsArchived() {
		return habit, nil
	}

	habit.Restore()
	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Delete(ctx context.Context, id string, userID string) error {
	if _, err := s.getOwned(ctx, id, userID); err != nil {
		return err
	}

	return s.repo.Delete(ctx, id)
}
