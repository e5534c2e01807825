package storage

import (
	"context"
	"fmt"
)

// Migrate creates the tables the API needs. Statements are idempotent.
func Migrate(ctx context.Context, db DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			telegram_id TEXT NOT NULL UNIQUE,
			username TEXT NOT NULL DEFAULT '',
			first_name TEXT NOT NULL DEFAULT '',
			last_name TEXT NOT NULL DEFAULT '',
			subscription_tier TEXT NOT NULL DEFAULT 'basic',
			onboarding_done BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS daily_progress (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			weight DOUBLE PRECISION,
			weight_recorded_at TIMESTAMPTZ,
			calories_consumed INTEGER NOT NULL DEFAULT 0,
			calories_target INTEGER NOT NULL DEFAULT 1050,
			steps INTEGER NOT NULL DEFAULT 0,
			steps_target INTEGER NOT NULL DEFAULT 8000,
			water_intake DOUBLE PRECISION NOT NULL DEFAULT 0,
			water_target DOUBLE PRECISION NOT NULL DEFAULT 2.5,
			completed_tasks TEXT[] NOT NULL DEFAULT '{}',
			chest_measurement DOUBLE PRECISION,
			waist_measurement DOUBLE PRECISION,
			hips_measurement DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, date)
		);`,
		`CREATE TABLE IF NOT EXISTS start_weights (
			user_id TEXT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			start_weight DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS onboarding_submissions (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			answers JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE INDEX IF NOT EXISTS idx_daily_progress_user_date ON daily_progress(user_id, date);`,
		`CREATE INDEX IF NOT EXISTS idx_onboarding_user ON onboarding_submissions(user_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
