package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.CheckInRepository = (*PostgresCheckInRepository)(nil)

const checkInColumns = `id, habit_id, user_id, date, value, created_at`

type PostgresCheckInRepository struct {
	db *sqlx.DB
}

func NewPostgresCheckInRepository(db *sqlx.DB) *PostgresCheckInRepository {
	return &PostgresCheckInRepository{db: db}
}

func (r *PostgresCheckInRepository) Create(ctx context.Context, c *domain.CheckIn) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query := `
		INSERT INTO checkins (` + checkInColumns + `)
		VALUES (:id, :habit_id, :user_id, :date, :value, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, c); err != nil {
		switch pgCode(err) {
		case codeUniqueViolation:
			return domain.ErrCheckInAlreadyExist
		case codeForeignKeyViolation:
			return domain.ErrHabitNotFound
		}
		return fmt.Errorf("repository: insert check-in failed: %w", err)
	}
	return nil
}

func (r *PostgresCheckInRepository) GetByID(ctx context.Context, id string) (*domain.CheckIn, error) {
	var c domain.CheckIn
	query := `SELECT ` + checkInColumns + ` FROM checkins WHERE id = $1`

	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckInNotFound
		}
		return nil, fmt.Errorf("repository: get check-in failed: %w", err)
	}
	return &c, nil
}

func (r *PostgresCheckInRepository) Delete(ctx context.Context, id string, userID string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM checkins WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("repository: delete check-in failed: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrCheckInNotFound
	}

	return nil
}

func (r *PostgresCheckInRepository) ListByHabitID(ctx context.Context, habitID string, from, to time.Time) ([]*domain.CheckIn, error) {
	checkIns := []*domain.CheckIn{}

	query := `
		SELECT ` + checkInColumns + ` FROM checkins
		WHERE habit_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC`

	if err := r.db.SelectContext(ctx, &checkIns, query, habitID, from, to); err != nil {
		return nil, fmt.Errorf("repository: list check-ins failed: %w", err)
	}
	return checkIns, nil
}

func (r *PostgresCheckInRepository) ListByUserIDAndDateRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.CheckIn, error) {
	checkIns := []*domain.CheckIn{}

	query := `
		SELECT ` + checkInColumns + ` FROM checkins
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC`

	if err := r.db.SelectContext(ctx, &checkIns, query, userID, from, to); err != nil {
		return nil, fmt.Errorf("repository: list user check-ins failed: %w", err)
	}
	return checkIns, nil
}
