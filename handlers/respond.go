package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"misterMoAPI/internal/content"
	"misterMoAPI/internal/storage"
	"misterMoAPI/internal/tier"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

const maxBodyBytes = 1 << 20

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "Internal server error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// authorizedUserID returns the user a request acts on. An empty requested
// id means the caller; any other user is forbidden.
func authorizedUserID(w http.ResponseWriter, r *http.Request, requested string) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	if requested != "" && requested != userID {
		respondWithError(w, http.StatusForbidden, "user_id does not match the authenticated user")
		return "", false
	}
	return userID, true
}

// respondWithServiceError maps service errors onto HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, component string, err error) {
	var verr *services.ValidationError
	var gate tier.GateError

	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	case errors.As(err, &gate):
		respondWithJSON(w, http.StatusForbidden, map[string]any{
			"error":         gate.Error(),
			"required_tier": gate.Required,
		})
	case errors.Is(err, services.ErrUnknownTask), errors.Is(err, services.ErrInvalidTier):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, content.ErrNotFound), errors.Is(err, content.ErrPageOutOfRange):
		respondWithError(w, http.StatusNotFound, err.Error())
	default:
		log.Printf("%s: %v", component, err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
