package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"misterMoAPI/internal/progress"
	"misterMoAPI/internal/schedule"
	"misterMoAPI/services"
)

type ScheduleHandler struct {
	progressService *services.ProgressService
}

func NewScheduleHandler(progressService *services.ProgressService) *ScheduleHandler {
	return &ScheduleHandler{progressService: progressService}
}

// GetSchedule renders the day's schedule with the caller's completion state.
// ?date= picks the day (default: server UTC day); ?weekday= overrides the
// weekday derived from it; ?fasting= only matters on Mondays.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	query := r.URL.Query()
	userID, ok := authorizedUserID(w, r, query.Get("user_id"))
	if !ok {
		return
	}

	date := query.Get("date")
	day := time.Now().UTC()
	if date != "" {
		parsed, err := time.Parse(progress.DateLayout, date)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		day = parsed
	}
	date = progress.DateOf(day)

	weekday := day.Weekday()
	if v := query.Get("weekday"); v != "" {
		wd, err := schedule.ParseWeekday(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		weekday = wd
	}

	fasting := false
	if v := query.Get("fasting"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "fasting must be a boolean")
			return
		}
		fasting = b
	}

	rec, err := h.progressService.GetToday(ctx, userID, date)
	if err != nil {
		respondWithServiceError(w, "Schedule Handler", err)
		return
	}

	respondWithJSON(w, http.StatusOK, schedule.Generate(weekday, fasting).Status(date, rec.CompletedTasks))
}

func (h *ScheduleHandler) GetSupplement(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	info, ok := schedule.LookupSupplement(key)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Supplement not found")
		return
	}
	respondWithJSON(w, http.StatusOK, info)
}
