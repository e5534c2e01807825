package storage

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

type MemoryStore struct {
	mu           sync.RWMutex
	users        map[string]*user.User
	progress     map[string]*progress.DailyProgress // record id -> record
	startWeights map[string]float64
	onboarding   map[string][]onboarding.Submission // user id -> submissions
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:        make(map[string]*user.User),
		progress:     make(map[string]*progress.DailyProgress),
		startWeights: make(map[string]float64),
		onboarding:   make(map[string][]onboarding.Submission),
	}
}

func (s *MemoryStore) UpsertTelegramUser(ctx context.Context, profile user.TelegramProfile, now time.Time) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := user.IDForTelegram(profile.ID)
	u, exists := s.users[id]
	if !exists {
		u = newUser(profile, now)
		s.users[id] = u
	} else {
		u.Username = profile.Username
		u.FirstName = profile.FirstName
		u.LastName = profile.LastName
		u.UpdatedAt = now
	}

	out := *u
	return &out, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, userID string) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, exists := s.users[userID]
	if !exists {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}

func (s *MemoryStore) UpdateUserState(ctx context.Context, userID string, onboardingDone *bool, subscription *tier.Tier, now time.Time) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[userID]
	if !exists {
		return nil, ErrNotFound
	}
	if onboardingDone != nil {
		u.OnboardingDone = *onboardingDone
	}
	if subscription != nil {
		u.SubscriptionTier = *subscription
	}
	u.UpdatedAt = now

	out := *u
	return &out, nil
}

func (s *MemoryStore) GetProgress(ctx context.Context, userID, date string) (*progress.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.progress[progress.RecordID(userID, date)]
	if !exists {
		return nil, ErrNotFound
	}
	return p.Clone(), nil
}

func (s *MemoryStore) SaveProgress(ctx context.Context, p *progress.DailyProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := p.Clone()
	rec.ID = progress.RecordID(p.UserID, p.Date)
	if existing, ok := s.progress[rec.ID]; ok {
		rec.CreatedAt = existing.CreatedAt
	}
	s.progress[rec.ID] = rec
	return nil
}

func (s *MemoryStore) ListProgress(ctx context.Context, userID, from, to string) ([]*progress.DailyProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*progress.DailyProgress{}
	for _, p := range s.progress {
		if p.UserID == userID && p.Date >= from && p.Date <= to {
			out = append(out, p.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *MemoryStore) GetStartWeight(ctx context.Context, userID string) (*float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, exists := s.startWeights[userID]
	if !exists {
		return nil, nil
	}
	return &w, nil
}

func (s *MemoryStore) SetStartWeight(ctx context.Context, userID string, kg float64, now time.Time) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w, exists := s.startWeights[userID]; exists {
		return w, nil
	}
	s.startWeights[userID] = kg
	return kg, nil
}

func (s *MemoryStore) SaveOnboarding(ctx context.Context, sub *onboarding.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.onboarding[sub.UserID] = append(s.onboarding[sub.UserID], *sub)
	return nil
}

// Submissions returns every onboarding submission stored for userID.
func (s *MemoryStore) Submissions(userID string) []onboarding.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]onboarding.Submission(nil), s.onboarding[userID]...)
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

func (s *MemoryStore) Close() {}

func formatTelegramID(id int64) string {
	return strconv.FormatInt(id, 10)
}
