package storage

import (
	"context"
	"errors"
	"time"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary of the API. PostgresStore backs
// production, MemoryStore backs tests and local development.
type Store interface {
	// UpsertTelegramUser creates the user on first sight and refreshes the
	// profile fields afterwards. Tier and onboarding state are preserved.
	UpsertTelegramUser(ctx context.Context, profile user.TelegramProfile, now time.Time) (*user.User, error)
	GetUser(ctx context.Context, userID string) (*user.User, error)
	UpdateUserState(ctx context.Context, userID string, onboardingDone *bool, subscription *tier.Tier, now time.Time) (*user.User, error)

	GetProgress(ctx context.Context, userID, date string) (*progress.DailyProgress, error)
	SaveProgress(ctx context.Context, p *progress.DailyProgress) error
	// ListProgress returns the stored records with from <= date <= to,
	// oldest first.
	ListProgress(ctx context.Context, userID, from, to string) ([]*progress.DailyProgress, error)

	GetStartWeight(ctx context.Context, userID string) (*float64, error)
	// SetStartWeight stores the start weight only when none exists and
	// returns the value that is stored afterwards.
	SetStartWeight(ctx context.Context, userID string, kg float64, now time.Time) (float64, error)

	SaveOnboarding(ctx context.Context, sub *onboarding.Submission) error

	Ping(ctx context.Context) error
	Close()
}

func newUser(profile user.TelegramProfile, now time.Time) *user.User {
	return &user.User{
		ID:               user.IDForTelegram(profile.ID),
		TelegramID:       formatTelegramID(profile.ID),
		Username:         profile.Username,
		FirstName:        profile.FirstName,
		LastName:         profile.LastName,
		SubscriptionTier: tier.Basic,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
