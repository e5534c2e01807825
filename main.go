package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"

	"misterMoAPI/handlers"
	"misterMoAPI/internal/config"
	"misterMoAPI/internal/content"
	"misterMoAPI/internal/storage"
	"misterMoAPI/middleware"
	"misterMoAPI/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := openStore(ctx, cfg)
	defer func() {
		log.Println("Closing storage...")
		store.Close()
	}()

	var sheet services.RowAppender
	if cfg.SheetsEnabled() {
		sink, err := services.NewSheetsSink(ctx, cfg.SheetsKeyFile, cfg.SheetID)
		if err != nil {
			log.Printf("Warning: Google Sheets disabled: %v", err)
		} else {
			sheet = sink
			log.Println("Google Sheets sink initialized successfully")
		}
	}

	middleware.InitPrometheus()

	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.CleanupVisitors(ctx)

	r := handlers.NewRouter(handlers.Deps{
		Store:        store,
		Tokens:       tokens,
		Auth:         services.NewAuthService(store, tokens, cfg.BotToken, cfg.InitDataMaxAge),
		Users:        services.NewUserService(store),
		Progress:     services.NewProgressService(store),
		Onboarding:   services.NewOnboardingService(store, sheet),
		Catalog:      content.Default(),
		ShareLink:    cfg.WebAppURL,
		ContactEmail: cfg.ContactEmail,
		RateLimiter:  limiter,
		MetricsUser:  cfg.MetricsUser,
		MetricsPass:  cfg.MetricsPass,
	})

	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)

	server := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      gorillaHandlers.CombinedLoggingHandler(os.Stdout, corsHandler(r)),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}

// openStore connects to Postgres, or falls back to memory when DATABASE_URL is unset.
func openStore(ctx context.Context, cfg *config.Config) storage.Store {
	if cfg.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, using in-memory storage")
		return storage.NewMemoryStore()
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pool, err := storage.NewPostgresPool(connectCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := storage.Migrate(connectCtx, pool); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	log.Println("Successfully connected to Postgres")
	return storage.NewPostgresStore(pool)
}
