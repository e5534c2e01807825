package testutil

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"os"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const BotToken = "123456:test-bot-token"

type TelegramUser struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
}

// SignInitData builds a WebApp init data string signed the way Telegram
// signs it for botToken.
func SignInitData(t *testing.T, botToken string, u TelegramUser, authDate time.Time) string {
	t.Helper()

	userJSON, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("Failed to encode init data user: %v", err)
	}

	values := url.Values{}
	values.Set("query_id", "AAH-test")
	values.Set("user", string(userJSON))
	values.Set("auth_date", strconv.FormatInt(authDate.Unix(), 10))

	pairs := make([]string, 0, len(values))
	for k := range values {
		pairs = append(pairs, k+"="+values.Get(k))
	}
	sort.Strings(pairs)

	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))
	sig := hmac.New(sha256.New, secret.Sum(nil))
	sig.Write([]byte(strings.Join(pairs, "\n")))

	values.Set("hash", hex.EncodeToString(sig.Sum(nil)))
	return values.Encode()
}

// SetupTestDB connects to TEST_DATABASE_URL or skips the test.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}
