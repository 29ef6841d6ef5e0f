package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habits/internal/adapters/handler/http/middleware"
	"github.com/comitanigiacomo/kanso-habits/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

// now is Wednesday 2024-05-15 in UTC.
var now = time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

type testEnv struct {
	router   *gin.Engine
	users    *repository.InMemoryUserRepository
	habits   *repository.InMemoryHabitRepository
	checkIns *repository.InMemoryCheckInRepository
}

// setupRouter wires the resource handlers behind a stub that trusts the
// X-User-ID header, standing in for the JWT middleware.
func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    repository.NewInMemoryUserRepository(),
		checkIns: repository.NewInMemoryCheckInRepository(),
	}
	env.habits = repository.NewInMemoryHabitRepository().CascadeTo(env.checkIns)

	clock := func() time.Time { return now }
	habitSvc := services.NewHabitService(env.habits, env.users).WithClock(clock)
	checkInSvc := services.NewCheckInService(env.checkIns, env.habits, env.users).WithClock(clock)
	statsSvc := services.NewStatsService(env.users, env.habits, env.checkIns).WithClock(clock)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID := c.GetHeader("X-User-ID"); userID != "" {
			c.Set(middleware.ContextUserIDKey, userID)
		}
		c.Next()
	})

	api := r.Group("/api/v1")
	adapterHTTP.NewHabitHandler(habitSvc).RegisterRoutes(api)
	adapterHTTP.NewCheckInHandler(checkInSvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc).RegisterRoutes(api)

	env.router = r
	return env
}

func (e *testEnv) addUser(t *testing.T, id, tz string) {
	t.Helper()
	u, err := domain.NewUser(id, id+"@kanso.app", tz)
	require.NoError(t, err)
	require.NoError(t, e.users.Create(context.Background(), u))
}

func (e *testEnv) addHabit(t *testing.T, userID, name string, goal domain.GoalType, target int, start time.Time) *domain.Habit {
	t.Helper()
	h, err := domain.NewHabit(userID, name, "", goal, target, start)
	require.NoError(t, err)
	require.NoError(t, e.habits.Create(context.Background(), h))
	return h
}

func (e *testEnv) addCheckIn(t *testing.T, h *domain.Habit, d time.Time) {
	t.Helper()
	require.NoError(t, e.checkIns.Create(context.Background(), domain.NewCheckIn(h.ID, h.UserID, d, 1)))
}

func (e *testEnv) do(method, path, userID, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
