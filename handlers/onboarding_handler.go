package handlers

import (
	"context"
	"net/http"
	"time"

	"misterMoAPI/internal/onboarding"
	"misterMoAPI/internal/user"
	"misterMoAPI/services"
)

type OnboardingHandler struct {
	onboardingService *services.OnboardingService
}

func NewOnboardingHandler(onboardingService *services.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

func (h *OnboardingHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req onboarding.SaveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, ok := authorizedUserID(w, r, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	if _, err := h.onboardingService.Save(ctx, &req); err != nil {
		respondWithServiceError(w, "Onboarding Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, user.AckResponse{OK: true})
}
