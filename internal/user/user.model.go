package user

import (
	"strconv"
	"time"

	"misterMoAPI/internal/tier"
)

type User struct {
	ID               string    `json:"id"`
	TelegramID       string    `json:"telegram_id"`
	Username         string    `json:"username,omitempty"`
	FirstName        string    `json:"first_name,omitempty"`
	LastName         string    `json:"last_name,omitempty"`
	SubscriptionTier tier.Tier `json:"subscription_tier"`
	OnboardingDone   bool      `json:"onboarding_done"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// State is the slice of the user record the client mirrors locally.
type State struct {
	OnboardingDone   bool       `json:"onboarding_done"`
	SubscriptionTier *tier.Tier `json:"subscription_tier"`
}

// TelegramProfile is the identity extracted from a verified init data payload.
type TelegramProfile struct {
	ID        int64
	Username  string
	FirstName string
	LastName  string
}

// IDForTelegram derives the internal user id from a Telegram user id.
func IDForTelegram(telegramID int64) string {
	return "user_" + strconv.FormatInt(telegramID, 10)
}
