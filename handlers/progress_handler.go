package handlers

import (
	"context"
	"net/http"
	"time"

	"misterMoAPI/internal/progress"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

type ProgressHandler struct {
	progressService *services.ProgressService
}

func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// GetToday returns the record for ?date= (the client's local day), or the
// server's UTC day when omitted.
func (h *ProgressHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := authorizedUserID(w, r, r.URL.Query().Get("user_id"))
	if !ok {
		return
	}

	rec, err := h.progressService.GetToday(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		respondWithServiceError(w, "GetToday Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, rec)
}

// GetWeek returns the summary of the week containing ?date=.
func (h *ProgressHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID, ok := authorizedUserID(w, r, r.URL.Query().Get("user_id"))
	if !ok {
		return
	}

	summary, err := h.progressService.Week(ctx, userID, r.URL.Query().Get("date"))
	if err != nil {
		respondWithServiceError(w, "GetWeek Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

func (h *ProgressHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var upd progress.Update
	if !decodeJSON(w, r, &upd) {
		return
	}

	userID, ok := authorizedUserID(w, r, upd.UserID)
	if !ok {
		return
	}
	upd.UserID = userID

	rec, err := h.progressService.Update(ctx, &upd)
	if err != nil {
		respondWithServiceError(w, "UpdateProgress Handler", err)
		return
	}

	middleware.RecordProgressUpdate()
	respondWithJSON(w, http.StatusOK, rec)
}
