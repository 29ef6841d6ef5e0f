package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

type CheckInService struct {
	repo      domain.CheckInRepository
	habitRepo domain.HabitRepository
	userRepo  domain.UserRepository
	now       Clock
}

func NewCheckInService(repo domain.CheckInRepository, habitRepo domain.HabitRepository, userRepo domain.UserRepository) *CheckInService {
	return &CheckInService{
		repo:      repo,
		habitRepo: habitRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

func (s *CheckInService) WithClock(now Clock) *CheckInService {
	s.now = now
	return s
}

type CreateCheckInInput struct {
	HabitID string
	UserID  string
	// Date defaults to today in the user's zone.
	Date *time.Time
	// Value defaults to 1.
	Value *int
}

func (s *CheckInService) Create(ctx context.Context, input CreateCheckInInput) (*domain.CheckIn, error) {
	habit, err := s.habitRepo.GetByID(ctx, input.HabitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != input.UserID {
		return nil, domain.ErrHabitNotFound
	}

	var date time.Time
	if input.Date != nil {
		date = *input.Date
	} else {
		_, today, err := userToday(ctx, s.userRepo, input.UserID, s.now())
		if err != nil {
			return nil, err
		}
		date = today
	}

	value := 1
	if input.Value != nil {
		value = *input.Value
	}

	checkIn := domain.NewCheckIn(habit.ID, input.UserID, date, value)
	if err := checkIn.Validate(); err != nil {
		return nil, err
	}
	if err := checkIn.ValidateFor(habit); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, checkIn); err != nil {
		return nil, err
	}

	return checkIn, nil
}

func (s *CheckInService) ListByHabitID(ctx context.Context, habitID, userID string, from, to time.Time) ([]*domain.CheckIn, error) {
	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.UserID != userID {
		return nil, domain.ErrHabitNotFound
	}

	return s.repo.ListByHabitID(ctx, habitID, domain.CivilDate(from), domain.CivilDate(to))
}

func (s *CheckInService) Delete(ctx context.Context, id string, userID string) error {
	checkIn, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if checkIn.UserID != userID {
		return domain.ErrCheckInNotFound
	}

	return s.repo.Delete(ctx, id, userID)
}
