package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var _ domain.HabitRepository = (*PostgresHabitRepository)(nil)

const habitColumns = `
	id, user_id, name, description, goal_type, target_per_period,
	start_date, archived_at, version, created_at, updated_at`

type PostgresHabitRepository struct {
	db *sqlx.DB
}

func NewPostgresHabitRepository(db *sqlx.DB) *PostgresHabitRepository {
	return &PostgresHabitRepository{db: db}
}

func (r *PostgresHabitRepository) Create(ctx context.Context, h *domain.Habit) error {
	query := `
        INSERT INTO habits (` + habitColumns + `)
        VALUES (
            :id, :user_id, :name, :description, :goal_type, :target_per_period,
            :start_date, :archived_at, 1, :created_at, :updated_at
        )`

	if _, err := r.db.NamedExecContext(ctx, query, h); err != nil {
		if pgCode(err) == codeForeignKeyViolation {
			return fmt.Errorf("repository: habit owner %s does not exist: %w", h.UserID, domain.ErrUserNotFound)
		}
		return fmt.Errorf("repository: insert habit failed: %w", err)
	}

	h.Version = 1
	return nil
}

func (r *PostgresHabitRepository) GetByID(ctx context.Context, id string) (*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits WHERE id = $1`

	var h domain.Habit
	if err := r.db.GetContext(ctx, &h, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrHabitNotFound
		}
		return nil, fmt.Errorf("repository: get habit failed: %w", err)
	}

	return &h, nil
}

func (r *PostgresHabitRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return r.list(ctx, `WHERE user_id = $1`, userID)
}

func (r *PostgresHabitRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Habit, error) {
	return r.list(ctx, `WHERE user_id = $1 AND archived_at IS NULL`, userID)
}

func (r *PostgresHabitRepository) list(ctx context.Context, where string, args ...interface{}) ([]*domain.Habit, error) {
	query := `SELECT ` + habitColumns + ` FROM habits ` + where + ` ORDER BY created_at ASC, id ASC`

	habits := []*domain.Habit{}
	if err := r.db.SelectContext(ctx, &habits, query, args...); err != nil {
		return nil, fmt.Errorf("repository: list habits failed: %w", err)
	}

	return habits, nil
}

func (r *PostgresHabitRepository) Update(ctx context.Context, h *domain.Habit) error {
	query := `
        UPDATE habits SET
            name=$1, description=$2, goal_type=$3, target_per_period=$4,
            start_date=$5, archived_at=$6,
            updated_at=NOW(), version = version + 1
        WHERE id=$7 AND version=$8
        RETURNING version, updated_at`

	row := r.db.QueryRowContext(ctx, query,
		h.Name, h.Description, h.GoalType, h.TargetPerPeriod,
		h.StartDate, h.ArchivedAt,
		h.ID, h.Version,
	)

	var newVersion int
	var newUpdatedAt time.Time

	if err := row.Scan(&newVersion, &newUpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var count int
			if checkErr := r.db.GetContext(ctx, &count, `SELECT count(*) FROM habits WHERE id = $1`, h.ID); checkErr != nil {
				return fmt.Errorf("repository: existence check failed: %w", checkErr)
			}

			if count == 0 {
				return domain.ErrHabitNotFound
			}
			return domain.ErrHabitConflict
		}
		return fmt.Errorf("repository: update habit failed: %w", err)
	}

	h.Version = newVersion
	h.UpdatedAt = newUpdatedAt

	return nil
}

func (r *PostgresHabitRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("repository: delete habit failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrHabitNotFound
	}

	return nil
}
