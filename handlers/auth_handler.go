package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"misterMoAPI/internal/user"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) TelegramAuth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.TelegramAuthRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.InitData == "" {
		respondWithError(w, http.StatusBadRequest, "init_data is required")
		return
	}

	resp, err := h.authService.ExchangeTelegram(ctx, req.InitData)
	if err != nil {
		middleware.RecordAuthExchange(false)
		if errors.Is(err, services.ErrInvalidInitData) {
			log.Printf("Auth Handler: rejected init data: %v", err)
			respondWithError(w, http.StatusUnauthorized, "Invalid init data")
			return
		}
		respondWithServiceError(w, "Auth Handler", err)
		return
	}

	middleware.RecordAuthExchange(true)
	respondWithJSON(w, http.StatusOK, resp)
}
