package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var (
	_ domain.HabitRepository   = (*InMemoryHabitRepository)(nil)
	_ domain.CheckInRepository = (*InMemoryCheckInRepository)(nil)
	_ domain.UserRepository    = (*InMemoryUserRepository)(nil)
)

// The in-memory repositories back the end-to-end tests and local runs
// without Postgres. They store copies so callers cannot mutate state
// behind the repository's back.

type InMemoryHabitRepository struct {
	store    map[string]domain.Habit
	checkIns *InMemoryCheckInRepository

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]domain.Habit),
	}
}

// CascadeTo makes Delete drop the habit's check-ins from c, mirroring the
// ON DELETE CASCADE of the Postgres schema.
func (r *InMemoryHabitRepository) CascadeTo(c *InMemoryCheckInRepository) *InMemoryHabitRepository {
	r.checkIns = c
	return r
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	habit.Version = 1
	r.store[habit.ID] = *habit
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	return &habit, nil
}

func (r *InMemoryHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return r.list(userID, true), nil
}

func (r *InMemoryHabitRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return r.list(userID, false), nil
}

func (r *InMemoryHabitRepository) list(userID string, includeArchived bool) []*domain.Habit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habits := []*domain.Habit{}
	for _, h := range r.store {
		if h.UserID != userID || (!includeArchived && h.IsArchived()) {
			continue
		}
		h := h
		habits = append(habits, &h)
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].ID < habits[j].ID
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.store[habit.ID]
	if !ok {
		return domain.ErrHabitNotFound
	}
	if stored.Version != habit.Version {
		return domain.ErrHabitConflict
	}

	habit.Version++
	habit.UpdatedAt = time.Now().UTC()
	r.store[habit.ID] = *habit
	return nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return domain.ErrHabitNotFound
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.checkIns != nil {
		r.checkIns.deleteByHabitID(id)
	}
	return nil
}

type InMemoryCheckInRepository struct {
	store map[string]domain.CheckIn

	mu sync.RWMutex
}

func NewInMemoryCheckInRepository() *InMemoryCheckInRepository {
	return &InMemoryCheckInRepository{
		store: make(map[string]domain.CheckIn),
	}
}

func (r *InMemoryCheckInRepository) Create(ctx context.Context, c *domain.CheckIn) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.store {
		if existing.UserID == c.UserID && existing.HabitID == c.HabitID && existing.Date.Equal(c.Date) {
			return domain.ErrCheckInAlreadyExist
		}
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	r.store[c.ID] = *c
	return nil
}

func (r *InMemoryCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.store[id]
	if !ok {
		return nil, domain.ErrCheckInNotFound
	}
	return &c, nil
}

func (r *InMemoryCheckInRepository) Delete(ctx context.Context, id string, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.store[id]
	if !ok || c.UserID != userID {
		return domain.ErrCheckInNotFound
	}

	delete(r.store, id)
	return nil
}

func (r *InMemoryCheckInRepository) deleteByHabitID(habitID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, c := range r.store {
		if c.HabitID == habitID {
			delete(r.store, id)
		}
	}
}

func (r *InMemoryCheckInRepository) ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*domain.CheckIn, error) {
	list := r.filter(func(c domain.CheckIn) bool {
		return c.HabitID == habitID && inRange(c.Date, from, to)
	})

	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return list, nil
}

func (r *InMemoryCheckInRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.CheckIn, error) {
	list := r.filter(func(c domain.CheckIn) bool {
		return c.UserID == userID && inRange(c.Date, from, to)
	})

	sort.Slice(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
	return list, nil
}

func (r *InMemoryCheckInRepository) filter(keep func(domain.CheckIn) bool) []*domain.CheckIn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := []*domain.CheckIn{}
	for _, c := range r.store {
		if keep(c) {
			c := c
			list = append(list, &c)
		}
	}
	return list
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

type InMemoryUserRepository struct {
	byID map[string]domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		byID: make(map[string]domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	r.byID[user.ID] = *user
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *InMemoryUserRepository) UpdateTimezone(ctx context.Context, id, timezone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}

	u.Timezone = timezone
	u.UpdatedAt = time.Now().UTC()
	r.byID[id] = u
	return nil
}
