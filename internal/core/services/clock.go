package services

import (
	"context"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/stats"
)

// Clock reads the wall clock. Services sample it once per request.
type Clock func() time.Time

// userToday resolves the calendar date of now in the user's zone.
func userToday(ctx context.Context, users domain.UserRepository, userID string, now time.Time) (*domain.User, time.Time, error) {
	user, err := users.GetByID(ctx, userID)
	if err != nil {
		return nil, time.Time{}, err
	}
	return user, stats.Today(user.Timezone, now), nil
}
