// Package apitest runs the full API over an in-memory store for client side tests.
package apitest

import (
	"net/http/httptest"
	"testing"
	"time"

	"misterMoAPI/handlers"
	"misterMoAPI/internal/content"
	"misterMoAPI/internal/storage"
	"misterMoAPI/internal/testutil"
	"misterMoAPI/services"
)

type Server struct {
	URL   string
	Store *storage.MemoryStore
}

func NewServer(t *testing.T) *Server {
	t.Helper()

	store := storage.NewMemoryStore()
	tokens := services.NewTokenService("apitest-secret", time.Hour)

	srv := httptest.NewServer(handlers.NewRouter(handlers.Deps{
		Store:      store,
		Tokens:     tokens,
		Auth:       services.NewAuthService(store, tokens, testutil.BotToken, time.Hour),
		Users:      services.NewUserService(store),
		Progress:   services.NewProgressService(store),
		Onboarding: services.NewOnboardingService(store, nil),
		Catalog:    content.Default(),
		ShareLink:  "https://t.me/mistermo_bot",
	}))
	t.Cleanup(srv.Close)

	return &Server{URL: srv.URL, Store: store}
}

// InitData returns init data for telegramID signed with the test bot token.
func InitData(t *testing.T, telegramID int64) string {
	t.Helper()
	return testutil.SignInitData(t, testutil.BotToken, testutil.TelegramUser{
		ID:        telegramID,
		FirstName: "Anna",
		Username:  "anna",
	}, time.Now())
}
