package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/stats"
)

type StatsService struct {
	userRepo    domain.UserRepository
	habitRepo   domain.HabitRepository
	checkInRepo domain.CheckInRepository
	now         Clock
}

func NewStatsService(userRepo domain.UserRepository, habitRepo domain.HabitRepository, checkInRepo domain.CheckInRepository) *StatsService {
	return &StatsService{
		userRepo:    userRepo,
		habitRepo:   habitRepo,
		checkInRepo: checkInRepo,
		now:         time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *StatsService) WithClock(now Clock) *StatsService {
	s.now = now
	return s
}

// load gathers everything one stats request needs. today is resolved here,
// once, and travels inside the returned request.
func (s *StatsService) load(ctx context.Context, userID, rangeToken string, withHabits bool) (stats.Request, error) {
	_, today, err := userToday(ctx, s.userRepo, userID, s.now())
	if err != nil {
		return stats.Request{}, err
	}

	if _, known := stats.ParseRange(rangeToken); !known {
		log.Printf("[STATS] Unknown range %q for user %s, using %s", rangeToken, userID, stats.DefaultRange)
	}
	window := stats.ResolveWindow(rangeToken, today)

	req := stats.Request{Today: today, Window: window}

	if withHabits {
		habits, err := s.habitRepo.ListActiveByUserID(ctx, userID)
		if err != nil {
			return stats.Request{}, err
		}
		req.Habits = habits
	}

	checkIns, err := s.checkInRepo.ListByUserIDAndDateRange(ctx, userID, window.Start, window.End)
	if err != nil {
		return stats.Request{}, err
	}
	req.CheckIns = checkIns

	return req, nil
}

func (s *StatsService) GetOverview(ctx context.Context, userID, rangeToken string) (*domain.StatsOverview, error) {
	req, err := s.load(ctx, userID, rangeToken, true)
	if err != nil {
		return nil, err
	}

	out, err := stats.Overview(req)
	if err != nil {
		return nil, fmt.Errorf("stats service: overview: %w", err)
	}
	return out, nil
}

func (s *StatsService) GetHeatmap(ctx context.Context, userID, rangeToken string) (*domain.Heatmap, error) {
	req, err := s.load(ctx, userID, rangeToken, false)
	if err != nil {
		return nil, err
	}

	out, err := stats.Heatmap(req)
	if err != nil {
		return nil, fmt.Errorf("stats service: heatmap: %w", err)
	}
	return out, nil
}

func (s *StatsService) GetConsistency(ctx context.Context, userID, rangeToken string) (*domain.ConsistencyScore, error) {
	req, err := s.load(ctx, userID, rangeToken, true)
	if err != nil {
		return nil, err
	}

	out, err := stats.Consistency(req)
	if err != nil {
		return nil, fmt.Errorf("stats service: consistency: %w", err)
	}
	return out, nil
}
