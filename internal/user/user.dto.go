package user

import "misterMoAPI/internal/tier"

type TelegramAuthRequest struct {
	InitData string `json:"init_data" validate:"required"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type UpdateStateRequest struct {
	UserID           string     `json:"user_id" validate:"required"`
	OnboardingDone   *bool      `json:"onboarding_done,omitempty"`
	SubscriptionTier *tier.Tier `json:"subscription_tier,omitempty"`
}

type StartWeightResponse struct {
	StartWeight *float64 `json:"start_weight"`
}

type SaveStartWeightRequest struct {
	UserID      string  `json:"user_id" validate:"required"`
	StartWeight float64 `json:"start_weight" validate:"gt=0,lt=500"`
}

type AckResponse struct {
	OK bool `json:"ok"`
}
