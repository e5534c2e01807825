package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"

	"misterMoAPI/internal/storage"
	"misterMoAPI/internal/user"
)

var ErrInvalidInitData = errors.New("invalid telegram init data")

// AuthService exchanges a signed Telegram WebApp init data string for a
// user record and a session token.
type AuthService struct {
	store    storage.Store
	tokens   *TokenService
	botToken string
	maxAge   time.Duration
	now      func() time.Time
}

func NewAuthService(store storage.Store, tokens *TokenService, botToken string, maxAge time.Duration) *AuthService {
	return &AuthService{
		store:    store,
		tokens:   tokens,
		botToken: botToken,
		maxAge:   maxAge,
		now:      time.Now,
	}
}

func (s *AuthService) ExchangeTelegram(ctx context.Context, raw string) (*user.AuthResponse, error) {
	profile, err := s.verify(raw)
	if err != nil {
		return nil, err
	}

	u, err := s.store.UpsertTelegramUser(ctx, *profile, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	log.Printf("AuthService: user %s signed in", u.ID)
	return &user.AuthResponse{User: u, Token: token}, nil
}

func (s *AuthService) verify(raw string) (*user.TelegramProfile, error) {
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidInitData)
	}
	if err := initdata.Validate(raw, s.botToken, s.maxAge); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}
	if data.User.ID == 0 {
		return nil, fmt.Errorf("%w: no user", ErrInvalidInitData)
	}

	return &user.TelegramProfile{
		ID:        data.User.ID,
		Username:  data.User.Username,
		FirstName: data.User.FirstName,
		LastName:  data.User.LastName,
	}, nil
}
