package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"misterMoAPI/internal/content"
	"misterMoAPI/internal/storage"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

type Deps struct {
	Store      storage.Store
	Tokens     *services.TokenService
	Auth       *services.AuthService
	Users      *services.UserService
	Progress   *services.ProgressService
	Onboarding *services.OnboardingService
	Catalog    *content.Catalog
	ShareLink  string

	// ContactEmail is shown on the legal pages.
	ContactEmail string

	// RateLimiter is optional.
	RateLimiter *middleware.RateLimiter
	MetricsUser string
	MetricsPass string
}

// NewRouter wires every API route.
func NewRouter(d Deps) *mux.Router {
	authHandler := NewAuthHandler(d.Auth)
	userHandler := NewUserHandler(d.Users)
	progressHandler := NewProgressHandler(d.Progress)
	onboardingHandler := NewOnboardingHandler(d.Onboarding)
	scheduleHandler := NewScheduleHandler(d.Progress)
	contentHandler := NewContentHandler(d.Catalog, d.Users)
	shareHandler := NewShareHandler(d.ShareLink)
	docHandler := NewDocHandler(d.ContactEmail)

	r := mux.NewRouter()
	r.Use(middleware.MonitorMiddleware)
	if d.RateLimiter != nil {
		r.Use(d.RateLimiter.Middleware)
	}

	r.HandleFunc("/privacy", docHandler.ServePrivacyPolicy).Methods("GET")
	r.HandleFunc("/terms", docHandler.ServeTermsOfService).Methods("GET")
	r.Handle("/metrics", middleware.BasicAuthMiddleware(d.MetricsUser, d.MetricsPass)(promhttp.Handler()))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", healthHandler(d.Store)).Methods("GET")
	api.HandleFunc("/auth/telegram", authHandler.TelegramAuth).Methods("POST")
	api.HandleFunc("/supplements/{key}", scheduleHandler.GetSupplement).Methods("GET")
	api.HandleFunc("/share/qr", shareHandler.GetQRCode).Methods("GET")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(d.Tokens))

	protected.HandleFunc("/user/state", userHandler.GetState).Methods("GET")
	protected.HandleFunc("/user/state", userHandler.UpdateState).Methods("POST")
	protected.HandleFunc("/user/start-weight", userHandler.GetStartWeight).Methods("GET")
	protected.HandleFunc("/user/start-weight", userHandler.SaveStartWeight).Methods("POST")

	protected.HandleFunc("/progress/today", progressHandler.GetToday).Methods("GET")
	protected.HandleFunc("/progress/update", progressHandler.UpdateProgress).Methods("POST")
	protected.HandleFunc("/progress/week", progressHandler.GetWeek).Methods("GET")

	protected.HandleFunc("/onboarding/save", onboardingHandler.Save).Methods("POST")

	protected.HandleFunc("/schedule", scheduleHandler.GetSchedule).Methods("GET")

	protected.HandleFunc("/content/books", contentHandler.GetBooks).Methods("GET")
	protected.HandleFunc("/content/books/{id}/pages/{page:[0-9]+}", contentHandler.GetBookPage).Methods("GET")
	protected.HandleFunc("/content/videos", contentHandler.GetVideos).Methods("GET")
	protected.HandleFunc("/content/videos/{id}", contentHandler.GetVideo).Methods("GET")
	protected.HandleFunc("/content/downloads", contentHandler.GetDownloads).Methods("GET")
	protected.HandleFunc("/dashboard/panels", contentHandler.GetPanels).Methods("GET")

	return r
}

func healthHandler(store storage.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "error": "database connection failed"})
			return
		}
		respondWithJSON(w, http.StatusOK, map[string]any{"ok": true, "service": "mistermo-api"})
	}
}
