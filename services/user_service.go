package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"misterMoAPI/internal/storage"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

var ErrInvalidTier = errors.New("invalid subscription tier")

type UserService struct {
	store storage.Store
	now   func() time.Time
}

func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store, now: time.Now}
}

// GetState returns the mirrored user state. Unknown users get the empty state.
func (s *UserService) GetState(ctx context.Context, userID string) (*user.State, error) {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return &user.State{}, nil
		}
		return nil, fmt.Errorf("failed to get user state: %w", err)
	}

	t := u.SubscriptionTier
	return &user.State{OnboardingDone: u.OnboardingDone, SubscriptionTier: &t}, nil
}

func (s *UserService) UpdateState(ctx context.Context, req *user.UpdateStateRequest) (*user.State, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.SubscriptionTier != nil && !req.SubscriptionTier.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTier, *req.SubscriptionTier)
	}

	u, err := s.store.UpdateUserState(ctx, req.UserID, req.OnboardingDone, req.SubscriptionTier, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update user state: %w", err)
	}

	t := u.SubscriptionTier
	return &user.State{OnboardingDone: u.OnboardingDone, SubscriptionTier: &t}, nil
}

// Tier returns the user's current tier, falling back to basic.
func (s *UserService) Tier(ctx context.Context, userID string) tier.Tier {
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return tier.Basic
	}
	return u.SubscriptionTier
}

func (s *UserService) GetStartWeight(ctx context.Context, userID string) (*float64, error) {
	w, err := s.store.GetStartWeight(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get start weight: %w", err)
	}
	return w, nil
}

// SaveStartWeight records the starting weight once; later calls return the
// original value unchanged.
func (s *UserService) SaveStartWeight(ctx context.Context, req *user.SaveStartWeightRequest) (float64, error) {
	if err := validateStruct(req); err != nil {
		return 0, err
	}
	return s.store.SetStartWeight(ctx, req.UserID, req.StartWeight, s.now())
}
