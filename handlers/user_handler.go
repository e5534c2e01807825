package handlers

import (
	"context"
	"net/http"
	"time"

	"misterMoAPI/internal/user"
	"misterMoAPI/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := authorizedUserID(w, r, r.URL.Query().Get("user_id"))
	if !ok {
		return
	}

	state, err := h.userService.GetState(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "GetState Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, state)
}

func (h *UserHandler) UpdateState(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.UpdateStateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, ok := authorizedUserID(w, r, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	if _, err := h.userService.UpdateState(ctx, &req); err != nil {
		respondWithServiceError(w, "UpdateState Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, user.AckResponse{OK: true})
}

func (h *UserHandler) GetStartWeight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := authorizedUserID(w, r, r.URL.Query().Get("user_id"))
	if !ok {
		return
	}

	weight, err := h.userService.GetStartWeight(ctx, userID)
	if err != nil {
		respondWithServiceError(w, "GetStartWeight Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, user.StartWeightResponse{StartWeight: weight})
}

func (h *UserHandler) SaveStartWeight(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var req user.SaveStartWeightRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	userID, ok := authorizedUserID(w, r, req.UserID)
	if !ok {
		return
	}
	req.UserID = userID

	stored, err := h.userService.SaveStartWeight(ctx, &req)
	if err != nil {
		respondWithServiceError(w, "SaveStartWeight Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, user.StartWeightResponse{StartWeight: &stored})
}
