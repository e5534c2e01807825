package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/testutil"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

// TestPostgresStore runs against a real database when TEST_DATABASE_URL is set.
func TestPostgresStore(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	require.NoError(t, Migrate(context.Background(), pool))
	runStoreContract(t, NewPostgresStore(pool))
}

func runStoreContract(t *testing.T, s Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	tgID := time.Now().UnixNano() % 1_000_000_000

	created, err := s.UpsertTelegramUser(ctx, user.TelegramProfile{ID: tgID, Username: "anna", FirstName: "Anna"}, now)
	require.NoError(t, err)
	assert.Equal(t, user.IDForTelegram(tgID), created.ID)
	assert.Equal(t, tier.Basic, created.SubscriptionTier)
	assert.False(t, created.OnboardingDone)

	premium := tier.Premium
	done := true
	_, err = s.UpdateUserState(ctx, created.ID, &done, &premium, now)
	require.NoError(t, err)

	// a later login refreshes the profile but keeps tier and onboarding
	again, err := s.UpsertTelegramUser(ctx, user.TelegramProfile{ID: tgID, Username: "anna_k", FirstName: "Anna"}, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "anna_k", again.Username)
	assert.Equal(t, tier.Premium, again.SubscriptionTier)
	assert.True(t, again.OnboardingDone)

	_, err = s.GetUser(ctx, "user_missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.UpdateUserState(ctx, "user_missing", &done, nil, now)
	assert.ErrorIs(t, err, ErrNotFound)

	date := progress.DateOf(now)
	_, err = s.GetProgress(ctx, created.ID, date)
	assert.ErrorIs(t, err, ErrNotFound)

	rec := progress.Default(created.ID, date, now)
	rec.Weight = progress.Ptr(71.5)
	rec.WeightRecordedAt = &now
	rec.CompletedTasks = []string{"wake-up", "weigh"}
	require.NoError(t, s.SaveProgress(ctx, rec))

	rec.Steps = 1200
	require.NoError(t, s.SaveProgress(ctx, rec))

	got, err := s.GetProgress(ctx, created.ID, date)
	require.NoError(t, err)
	assert.Equal(t, progress.RecordID(created.ID, date), got.ID)
	assert.Equal(t, date, got.Date)
	require.NotNil(t, got.Weight)
	assert.Equal(t, 71.5, *got.Weight)
	assert.Equal(t, 1200, got.Steps)
	assert.Equal(t, []string{"wake-up", "weigh"}, got.CompletedTasks)

	prev := progress.DateOf(now.AddDate(0, 0, -1))
	require.NoError(t, s.SaveProgress(ctx, progress.Default(created.ID, prev, now)))
	require.NoError(t, s.SaveProgress(ctx, progress.Default(created.ID, progress.DateOf(now.AddDate(0, 0, -9)), now)))

	listed, err := s.ListProgress(ctx, created.ID, progress.DateOf(now.AddDate(0, 0, -6)), date)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, prev, listed[0].Date)
	assert.Equal(t, date, listed[1].Date)

	listed, err = s.ListProgress(ctx, "user_missing", date, date)
	require.NoError(t, err)
	assert.Empty(t, listed)

	sw, err := s.GetStartWeight(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, sw)

	stored, err := s.SetStartWeight(ctx, created.ID, 80, now)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stored)

	stored, err = s.SetStartWeight(ctx, created.ID, 75, now)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stored, "first write wins")

	sub := &onboarding.Submission{
		ID:        uuid.New().String(),
		UserID:    created.ID,
		Answers:   onboarding.Answers{FirstName: "Anna", Height: "170", Weight: "80", Age: "35"},
		CreatedAt: now,
	}
	require.NoError(t, s.SaveOnboarding(ctx, sub))
	require.NoError(t, s.Ping(ctx))
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Now()

	rec := progress.Default("user_1", "2026-10-16", now)
	require.NoError(t, s.SaveProgress(ctx, rec))

	got, err := s.GetProgress(ctx, "user_1", "2026-10-16")
	require.NoError(t, err)
	got.CompletedTasks = append(got.CompletedTasks, "weigh")
	got.Steps = 99

	again, err := s.GetProgress(ctx, "user_1", "2026-10-16")
	require.NoError(t, err)
	assert.Empty(t, again.CompletedTasks)
	assert.Equal(t, 0, again.Steps)

	require.NoError(t, s.SaveOnboarding(ctx, &onboarding.Submission{UserID: "user_1"}))
	assert.Len(t, s.Submissions("user_1"), 1)
}
