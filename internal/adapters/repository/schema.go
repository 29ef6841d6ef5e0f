package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema is idempotent and safe to apply on every boot.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	timezone      TEXT NOT NULL DEFAULT 'UTC',
	created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS habits (
	id                TEXT PRIMARY KEY,
	user_id           TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	name              VARCHAR(100) NOT NULL,
	description       VARCHAR(500) NOT NULL DEFAULT '',
	goal_type         TEXT NOT NULL CHECK (goal_type IN ('DAILY', 'X_PER_WEEK')),
	target_per_period INTEGER NOT NULL DEFAULT 1 CHECK (target_per_period BETWEEN 1 AND 7),
	start_date        DATE NOT NULL,
	archived_at       TIMESTAMPTZ,
	version           INTEGER NOT NULL DEFAULT 1,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id);

CREATE TABLE IF NOT EXISTS checkins (
	id         TEXT PRIMARY KEY,
	habit_id   TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	date       DATE NOT NULL,
	value      INTEGER NOT NULL DEFAULT 1 CHECK (value >= 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT uq_checkin_user_habit_date UNIQUE (user_id, habit_id, date)
);

CREATE INDEX IF NOT EXISTS idx_checkins_user_date ON checkins(user_id, date);
`

func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("repository: apply schema failed: %w", err)
	}
	return nil
}
