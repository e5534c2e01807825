package storage

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/tier"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *PostgresStore) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewPostgresStore(mock)
}

var userCols = []string{"id", "telegram_id", "username", "first_name", "last_name", "subscription_tier", "onboarding_done", "created_at", "updated_at"}

func TestPostgresGetUser(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("user_42").
		WillReturnRows(mock.NewRows(userCols).AddRow("user_42", "42", "anna", "Anna", "", "mystery", true, now, now))

	u, err := s.GetUser(context.Background(), "user_42")
	require.NoError(t, err)
	assert.Equal(t, "42", u.TelegramID)
	assert.Equal(t, tier.Basic, u.SubscriptionTier, "unknown stored tier degrades to basic")
	assert.True(t, u.OnboardingDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetUserNotFound(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
		WithArgs("user_0").
		WillReturnError(pgx.ErrNoRows)

	_, err := s.GetUser(context.Background(), "user_0")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetProgress(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()
	weight := 70.5

	cols := []string{"id", "user_id", "date", "weight", "weight_recorded_at", "calories_consumed", "calories_target",
		"steps", "steps_target", "water_intake", "water_target", "completed_tasks",
		"chest_measurement", "waist_measurement", "hips_measurement", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM daily_progress\s+WHERE user_id = \$1 AND date = \$2::date`).
		WithArgs("user_1", "2026-10-16").
		WillReturnRows(mock.NewRows(cols).AddRow(
			"user_1_2026-10-16", "user_1", "2026-10-16", &weight, nil, 300, 1050,
			2000, 8000, 1.5, 2.5, []string{"weigh"},
			nil, nil, nil, now, now,
		))

	p, err := s.GetProgress(context.Background(), "user_1", "2026-10-16")
	require.NoError(t, err)
	require.NotNil(t, p.Weight)
	assert.Equal(t, 70.5, *p.Weight)
	assert.Nil(t, p.WeightRecordedAt)
	assert.Equal(t, []string{"weigh"}, p.CompletedTasks)
	assert.Equal(t, 1.5, p.WaterIntake)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListProgress(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()

	cols := []string{"id", "user_id", "date", "weight", "weight_recorded_at", "calories_consumed", "calories_target",
		"steps", "steps_target", "water_intake", "water_target", "completed_tasks",
		"chest_measurement", "waist_measurement", "hips_measurement", "created_at", "updated_at"}

	mock.ExpectQuery(`FROM daily_progress\s+WHERE user_id = \$1 AND date BETWEEN \$2::date AND \$3::date\s+ORDER BY date ASC`).
		WithArgs("user_1", "2026-10-12", "2026-10-18").
		WillReturnRows(mock.NewRows(cols).
			AddRow("user_1_2026-10-12", "user_1", "2026-10-12", nil, nil, 0, 1050, 0, 8000, 0.5, 2.5, []string{}, nil, nil, nil, now, now).
			AddRow("user_1_2026-10-13", "user_1", "2026-10-13", nil, nil, 400, 1050, 0, 8000, 1.0, 2.5, []string{"shower"}, nil, nil, nil, now, now))

	list, err := s.ListProgress(context.Background(), "user_1", "2026-10-12", "2026-10-18")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Empty(t, list[0].CompletedTasks)
	assert.Equal(t, "2026-10-13", list[1].Date)
	assert.Equal(t, 400, list[1].CaloriesConsumed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveProgressUpserts(t *testing.T) {
	mock, s := newMock(t)
	rec := progress.Default("user_1", "2026-10-16", time.Now())
	rec.CompletedTasks = nil

	args := make([]any, 17)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	args[0] = "user_1_2026-10-16"
	args[11] = []string{}

	mock.ExpectExec(`INSERT INTO daily_progress .+ ON CONFLICT \(user_id, date\) DO UPDATE`).
		WithArgs(args...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, s.SaveProgress(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSetStartWeightReturnsStored(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO start_weights .+ ON CONFLICT \(user_id\) DO NOTHING`).
		WithArgs("user_1", 75.0, now).
		WillReturnRows(mock.NewRows([]string{"start_weight"}).AddRow(80.0))

	stored, err := s.SetStartWeight(context.Background(), "user_1", 75, now)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStartWeightMissing(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery(`SELECT start_weight FROM start_weights`).
		WithArgs("user_1").
		WillReturnError(pgx.ErrNoRows)

	w, err := s.GetStartWeight(context.Background(), "user_1")
	require.NoError(t, err)
	assert.Nil(t, w)
}

func TestPostgresSaveOnboarding(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()

	mock.ExpectExec(`INSERT INTO onboarding_submissions`).
		WithArgs("sub-1", "user_1", pgxmock.AnyArg(), now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := s.SaveOnboarding(context.Background(), &onboarding.Submission{
		ID:        "sub-1",
		UserID:    "user_1",
		Answers:   onboarding.Answers{FirstName: "Anna"},
		CreatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateRunsEveryStatement(t *testing.T) {
	mock, _ := newMock(t)
	mock.MatchExpectationsInOrder(true)
	for i := 0; i < 6; i++ {
		mock.ExpectExec(`CREATE (TABLE|INDEX) IF NOT EXISTS`).WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}
	require.NoError(t, Migrate(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}
