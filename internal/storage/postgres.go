package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

type PostgresStore struct {
	db DB
}

// NewPostgresPool opens a tuned connection pool and checks it is reachable.
func NewPostgresPool(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

func NewPostgresStore(db DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, telegram_id, username, first_name, last_name, subscription_tier, onboarding_done, created_at, updated_at`

func scanUser(row pgx.Row) (*user.User, error) {
	var u user.User
	var subscription string
	err := row.Scan(
		&u.ID,
		&u.TelegramID,
		&u.Username,
		&u.FirstName,
		&u.LastName,
		&subscription,
		&u.OnboardingDone,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.SubscriptionTier = tier.OrBasic(subscription)
	return &u, nil
}

func (s *PostgresStore) UpsertTelegramUser(ctx context.Context, profile user.TelegramProfile, now time.Time) (*user.User, error) {
	u := newUser(profile, now)

	query := `
	INSERT INTO users (id, telegram_id, username, first_name, last_name, subscription_tier, onboarding_done, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, FALSE, $7, $7)
	ON CONFLICT (id) DO UPDATE SET
		username = EXCLUDED.username,
		first_name = EXCLUDED.first_name,
		last_name = EXCLUDED.last_name,
		updated_at = EXCLUDED.updated_at
	RETURNING ` + userColumns

	out, err := scanUser(s.db.QueryRow(ctx, query,
		u.ID,
		u.TelegramID,
		u.Username,
		u.FirstName,
		u.LastName,
		string(u.SubscriptionTier),
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) GetUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) UpdateUserState(ctx context.Context, userID string, onboardingDone *bool, subscription *tier.Tier, now time.Time) (*user.User, error) {
	var tierArg *string
	if subscription != nil {
		v := string(*subscription)
		tierArg = &v
	}

	query := `
	UPDATE users SET
		onboarding_done = COALESCE($2, onboarding_done),
		subscription_tier = COALESCE($3, subscription_tier),
		updated_at = $4
	WHERE id = $1
	RETURNING ` + userColumns

	u, err := scanUser(s.db.QueryRow(ctx, query, userID, onboardingDone, tierArg, now))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user state: %w", err)
	}
	return u, nil
}

const progressColumns = `id, user_id, date::text, weight, weight_recorded_at, calories_consumed, calories_target,
	steps, steps_target, water_intake, water_target, completed_tasks,
	chest_measurement, waist_measurement, hips_measurement, created_at, updated_at`

func scanProgress(row pgx.Row) (*progress.DailyProgress, error) {
	var p progress.DailyProgress
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Date,
		&p.Weight,
		&p.WeightRecordedAt,
		&p.CaloriesConsumed,
		&p.CaloriesTarget,
		&p.Steps,
		&p.StepsTarget,
		&p.WaterIntake,
		&p.WaterTarget,
		&p.CompletedTasks,
		&p.ChestMeasurement,
		&p.WaistMeasurement,
		&p.HipsMeasurement,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if p.CompletedTasks == nil {
		p.CompletedTasks = []string{}
	}
	return &p, nil
}

func (s *PostgresStore) GetProgress(ctx context.Context, userID, date string) (*progress.DailyProgress, error) {
	query := `SELECT ` + progressColumns + `
	FROM daily_progress
	WHERE user_id = $1 AND date = $2::date
	`

	p, err := scanProgress(s.db.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get progress: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListProgress(ctx context.Context, userID, from, to string) ([]*progress.DailyProgress, error) {
	query := `SELECT ` + progressColumns + `
	FROM daily_progress
	WHERE user_id = $1 AND date BETWEEN $2::date AND $3::date
	ORDER BY date ASC
	`

	rows, err := s.db.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	defer rows.Close()

	out := []*progress.DailyProgress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan progress: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) SaveProgress(ctx context.Context, p *progress.DailyProgress) error {
	completed := p.CompletedTasks
	if completed == nil {
		completed = []string{}
	}

	query := `
	INSERT INTO daily_progress (
		id, user_id, date, weight, weight_recorded_at, calories_consumed, calories_target,
		steps, steps_target, water_intake, water_target, completed_tasks,
		chest_measurement, waist_measurement, hips_measurement, created_at, updated_at
	)
	VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	ON CONFLICT (user_id, date) DO UPDATE SET
		weight = EXCLUDED.weight,
		weight_recorded_at = EXCLUDED.weight_recorded_at,
		calories_consumed = EXCLUDED.calories_consumed,
		calories_target = EXCLUDED.calories_target,
		steps = EXCLUDED.steps,
		steps_target = EXCLUDED.steps_target,
		water_intake = EXCLUDED.water_intake,
		water_target = EXCLUDED.water_target,
		completed_tasks = EXCLUDED.completed_tasks,
		chest_measurement = EXCLUDED.chest_measurement,
		waist_measurement = EXCLUDED.waist_measurement,
		hips_measurement = EXCLUDED.hips_measurement,
		updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.Exec(ctx, query,
		progress.RecordID(p.UserID, p.Date),
		p.UserID,
		p.Date,
		p.Weight,
		p.WeightRecordedAt,
		p.CaloriesConsumed,
		p.CaloriesTarget,
		p.Steps,
		p.StepsTarget,
		p.WaterIntake,
		p.WaterTarget,
		completed,
		p.ChestMeasurement,
		p.WaistMeasurement,
		p.HipsMeasurement,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetStartWeight(ctx context.Context, userID string) (*float64, error) {
	var w float64
	err := s.db.QueryRow(ctx, `SELECT start_weight FROM start_weights WHERE user_id = $1`, userID).Scan(&w)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get start weight: %w", err)
	}
	return &w, nil
}

func (s *PostgresStore) SetStartWeight(ctx context.Context, userID string, kg float64, now time.Time) (float64, error) {
	query := `
	WITH ins AS (
		INSERT INTO start_weights (user_id, start_weight, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO NOTHING
		RETURNING start_weight
	)
	SELECT start_weight FROM ins
	UNION ALL
	SELECT start_weight FROM start_weights WHERE user_id = $1
	LIMIT 1
	`

	var stored float64
	if err := s.db.QueryRow(ctx, query, userID, kg, now).Scan(&stored); err != nil {
		return 0, fmt.Errorf("failed to save start weight: %w", err)
	}
	return stored, nil
}

func (s *PostgresStore) SaveOnboarding(ctx context.Context, sub *onboarding.Submission) error {
	answers, err := json.Marshal(sub.Answers)
	if err != nil {
		return fmt.Errorf("failed to encode onboarding answers: %w", err)
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO onboarding_submissions (id, user_id, answers, created_at) VALUES ($1, $2, $3::jsonb, $4)`,
		sub.ID, sub.UserID, string(answers), sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save onboarding: %w", err)
	}
	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() {
	s.db.Close()
}
