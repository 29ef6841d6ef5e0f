package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

func TestCheckInService_Create(t *testing.T) {
	ctx := context.Background()
	uid := "user-123"
	hid := "habit-abc"
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 15, 23, 30, 0, 0, time.UTC)

	setup := func() (*services.CheckInService, *MockCheckInRepo, *MockHabitRepo, *MockUserRepo) {
		repo := new(MockCheckInRepo)
		habits := new(MockHabitRepo)
		users := new(MockUserRepo)
		return services.NewCheckInService(repo, habits, users).WithClock(fixedClock(now)), repo, habits, users
	}

	t.Run("Success: Defaults to today in the user's zone with value 1", func(t *testing.T) {
		svc, repo, habits, users := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: uid, StartDate: start}, nil)
		users.On("GetByID", ctx, uid).Return(&domain.User{ID: uid, Timezone: "Asia/Tokyo"}, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(c *domain.CheckIn) bool {
			return c.HabitID == hid && c.Value == 1
		})).Return(nil)

		created, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid})

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), created.Date, "Tokyo is already on the 16th")
		repo.AssertExpectations(t)
	})

	t.Run("Success: Explicit date and value", func(t *testing.T) {
		svc, repo, habits, _ := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: uid, StartDate: start}, nil)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		day := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		created, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid, Date: &day, Value: ptr(0)})

		require.NoError(t, err)
		assert.Equal(t, day, created.Date)
		assert.Equal(t, 0, created.Value)
	})

	t.Run("Fail: Date before habit start", func(t *testing.T) {
		svc, repo, habits, _ := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: uid, StartDate: start}, nil)

		day := start.AddDate(0, 0, -1)
		_, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid, Date: &day})

		assert.ErrorIs(t, err, domain.ErrCheckInBeforeStart)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Fail: Negative value", func(t *testing.T) {
		svc, _, habits, _ := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: uid, StartDate: start}, nil)

		_, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid, Date: &start, Value: ptr(-2)})

		assert.Error(t, err)
	})

	t.Run("Fail: Duplicate day surfaces the repository conflict", func(t *testing.T) {
		svc, repo, habits, _ := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: uid, StartDate: start}, nil)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrCheckInAlreadyExist)

		_, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid, Date: &start})

		assert.ErrorIs(t, err, domain.ErrCheckInAlreadyExist)
	})

	t.Run("Security: Habit of another user", func(t *testing.T) {
		svc, repo, habits, _ := setup()

		habits.On("GetByID", ctx, hid).Return(&domain.Habit{ID: hid, UserID: "hacker"}, nil)

		_, err := svc.Create(ctx, services.CreateCheckInInput{HabitID: hid, UserID: uid})

		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCheckInService_ListByHabitID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCheckInRepo)
	habits := new(MockHabitRepo)
	svc := services.NewCheckInService(repo, habits, new(MockUserRepo))

	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	habits.On("GetByID", ctx, "h1").Return(&domain.Habit{ID: "h1", UserID: "u1"}, nil)
	repo.On("ListByHabitID", ctx, "h1", from, to).Return([]*domain.CheckIn{{ID: "c1"}}, nil)

	list, err := svc.ListByHabitID(ctx, "h1", "u1", from, to)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = svc.ListByHabitID(ctx, "h1", "u2", from, to)
	assert.ErrorIs(t, err, domain.ErrHabitNotFound)
}

func TestCheckInService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockCheckInRepo)
		svc := services.NewCheckInService(repo, new(MockHabitRepo), new(MockUserRepo))

		repo.On("GetByID", ctx, "c1").Return(&domain.CheckIn{ID: "c1", UserID: "u1"}, nil)
		repo.On("Delete", ctx, "c1", "u1").Return(nil)

		require.NoError(t, svc.Delete(ctx, "c1", "u1"))
		repo.AssertExpectations(t)
	})

	t.Run("Security: Foreign check-in looks not found", func(t *testing.T) {
		repo := new(MockCheckInRepo)
		svc := services.NewCheckInService(repo, new(MockHabitRepo), new(MockUserRepo))

		repo.On("GetByID", ctx, "c1").Return(&domain.CheckIn{ID: "c1", UserID: "u1"}, nil)

		err := svc.Delete(ctx, "c1", "intruder")
		assert.ErrorIs(t, err, domain.ErrCheckInNotFound)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
