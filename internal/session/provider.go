// Package session resolves who is using the app. It exchanges the host's
// init data for a backend session and keeps the result in a local cache
// that is read only when the exchange is not possible.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/tier"
	"misterMoAPI/internal/user"
)

var ErrNotSignedIn = errors.New("not signed in")

// Backend is the part of the API the provider needs. *client.Client
// implements it.
type Backend interface {
	AuthTelegram(ctx context.Context, initData string) (*user.AuthResponse, error)
	GetState(ctx context.Context, userID string) (*user.State, error)
	UpdateState(ctx context.Context, req user.UpdateStateRequest) error
	SaveOnboarding(ctx context.Context, userID string, answers onboarding.Answers) error
	SetToken(token string)
}

// State is the resolved session. A nil User means unauthenticated.
type State struct {
	User             *user.User
	Token            string
	OnboardingDone   bool
	SubscriptionTier tier.Tier
	// FromCache is set when the state came from the local cache rather
	// than a fresh exchange.
	FromCache bool
}

func (s State) Authenticated() bool {
	return s.User != nil
}

type Provider struct {
	host    HostRuntime
	backend Backend
	cache   LocalStore

	mu    sync.RWMutex
	state State
}

func NewProvider(host HostRuntime, backend Backend, cache LocalStore) *Provider {
	return &Provider{host: host, backend: backend, cache: cache}
}

// State returns the last resolved state.
func (p *Provider) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

func (p *Provider) setState(s State) State {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
	return s
}

// Resolve makes a single exchange attempt with the host's init data. When
// there is no init data or the exchange fails, the cached user is used; a
// missing or unreadable cache yields an unauthenticated state.
func (p *Provider) Resolve(ctx context.Context) State {
	p.host.Ready()

	if initData := p.host.InitData(); initData != "" {
		s, err := p.exchange(ctx, initData)
		if err == nil {
			return p.setState(s)
		}
		log.Printf("Session: telegram exchange failed, falling back to cache: %v", err)
	}

	return p.setState(p.fromCache(ctx))
}

func (p *Provider) exchange(ctx context.Context, initData string) (State, error) {
	resp, err := p.backend.AuthTelegram(ctx, initData)
	if err != nil {
		return State{}, err
	}
	if resp.User == nil || resp.Token == "" {
		return State{}, fmt.Errorf("exchange returned no user")
	}
	p.backend.SetToken(resp.Token)

	u := resp.User
	u.SubscriptionTier = tier.OrBasic(string(u.SubscriptionTier))
	s := State{
		User:             u,
		Token:            resp.Token,
		OnboardingDone:   u.OnboardingDone,
		SubscriptionTier: u.SubscriptionTier,
	}

	if err := p.writeUser(ctx, u); err != nil {
		log.Printf("Session: failed to cache user: %v", err)
	}
	p.put(ctx, KeyAuthToken, resp.Token)

	remote, err := p.backend.GetState(ctx, u.ID)
	if err != nil {
		log.Printf("Session: failed to fetch user state for %s: %v", u.ID, err)
	} else {
		s.OnboardingDone = remote.OnboardingDone
		if remote.SubscriptionTier != nil {
			s.SubscriptionTier = tier.OrBasic(string(*remote.SubscriptionTier))
		}
	}

	p.put(ctx, KeyOnboardingDone, boolString(s.OnboardingDone))
	p.put(ctx, KeySubscriptionTier, string(s.SubscriptionTier))
	return s, nil
}

func (p *Provider) fromCache(ctx context.Context) State {
	raw, ok, err := p.cache.Get(ctx, KeyTelegramUser)
	if err != nil {
		log.Printf("Session: failed to read cached user: %v", err)
		return State{}
	}
	if !ok {
		return State{}
	}

	var u user.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		log.Printf("Session: ignoring corrupted cached user")
		return State{}
	}

	s := State{User: &u, FromCache: true, SubscriptionTier: tier.OrBasic(string(u.SubscriptionTier))}
	if v, ok := p.get(ctx, KeySubscriptionTier); ok && v != "" {
		s.SubscriptionTier = tier.OrBasic(v)
	}
	if v, ok := p.get(ctx, KeyOnboardingDone); ok {
		s.OnboardingDone = v == "true"
	}
	if token, ok := p.get(ctx, KeyAuthToken); ok && token != "" {
		s.Token = token
		p.backend.SetToken(token)
	}
	return s
}

// SignOut forgets the session and clears the cache.
func (p *Provider) SignOut(ctx context.Context) error {
	p.backend.SetToken("")
	p.setState(State{})
	if err := p.cache.Delete(ctx, KeyTelegramUser, KeyAuthToken, KeyOnboardingDone, KeySubscriptionTier); err != nil {
		return fmt.Errorf("failed to clear local state: %w", err)
	}
	return nil
}

// UpdateSubscriptionTier writes the tier to the backend and mirrors it locally.
func (p *Provider) UpdateSubscriptionTier(ctx context.Context, t tier.Tier) error {
	if !t.Valid() {
		return fmt.Errorf("invalid subscription tier %q", t)
	}
	s := p.State()
	if s.User == nil {
		return ErrNotSignedIn
	}
	if err := p.backend.UpdateState(ctx, user.UpdateStateRequest{UserID: s.User.ID, SubscriptionTier: &t}); err != nil {
		return fmt.Errorf("failed to update subscription tier: %w", err)
	}

	u := *s.User
	u.SubscriptionTier = t
	s.User = &u
	s.SubscriptionTier = t
	p.setState(s)

	if err := p.writeUser(ctx, &u); err != nil {
		log.Printf("Session: failed to cache user: %v", err)
	}
	p.put(ctx, KeySubscriptionTier, string(t))
	return nil
}

func (p *Provider) CompleteOnboarding(ctx context.Context) error {
	s := p.State()
	if s.User == nil {
		return ErrNotSignedIn
	}
	done := true
	if err := p.backend.UpdateState(ctx, user.UpdateStateRequest{UserID: s.User.ID, OnboardingDone: &done}); err != nil {
		return fmt.Errorf("failed to complete onboarding: %w", err)
	}

	s.OnboardingDone = true
	p.setState(s)
	p.put(ctx, KeyOnboardingDone, "true")
	return nil
}

// SaveOnboarding submits the questionnaire and marks onboarding done.
func (p *Provider) SaveOnboarding(ctx context.Context, answers onboarding.Answers) error {
	s := p.State()
	if s.User == nil {
		return ErrNotSignedIn
	}
	if err := p.backend.SaveOnboarding(ctx, s.User.ID, answers); err != nil {
		return fmt.Errorf("failed to save onboarding: %w", err)
	}
	return p.CompleteOnboarding(ctx)
}

func (p *Provider) writeUser(ctx context.Context, u *user.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return p.cache.Set(ctx, KeyTelegramUser, string(data))
}

func (p *Provider) get(ctx context.Context, key string) (string, bool) {
	v, ok, err := p.cache.Get(ctx, key)
	if err != nil {
		log.Printf("Session: failed to read %s: %v", key, err)
		return "", false
	}
	return v, ok
}

func (p *Provider) put(ctx context.Context, key, value string) {
	if err := p.cache.Set(ctx, key, value); err != nil {
		log.Printf("Session: failed to write %s: %v", key, err)
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
