package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultWebAppURL hosts both the mini app and the API.
const DefaultWebAppURL = "https://morachkovskiyapp.com"

type Config struct {
	DatabaseURL string
	Port        string

	BotToken       string
	JWTSecret      string
	TokenTTL       time.Duration
	InitDataMaxAge time.Duration

	MetricsUser string
	MetricsPass string

	SheetsKeyFile string
	SheetID       string

	WebAppURL    string
	PublicURL    string // API base serving the legal pages
	ContactEmail string

	RateLimitRPS   float64
	RateLimitBurst int
}

// BotConfig is what the launcher bot needs. The URLs are read exactly as
// Load reads them.
type BotConfig struct {
	BotToken  string
	WebAppURL string
	PublicURL string
}

func loadDotEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func webAppURLs() (webApp, public string) {
	webApp = getEnv("WEBAPP_URL", DefaultWebAppURL)
	return webApp, getEnv("PUBLIC_URL", webApp)
}

// LoadBot reads the launcher bot settings. Only BOT_TOKEN is required.
func LoadBot() (*BotConfig, error) {
	loadDotEnv()

	cfg := &BotConfig{BotToken: os.Getenv("BOT_TOKEN")}
	cfg.WebAppURL, cfg.PublicURL = webAppURLs()
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is not set")
	}
	return cfg, nil
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "3333"),
		BotToken:      os.Getenv("BOT_TOKEN"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		MetricsUser:   os.Getenv("METRICS_USER"),
		MetricsPass:   os.Getenv("METRICS_PASS"),
		SheetsKeyFile: os.Getenv("GOOGLE_SHEETS_KEY_FILE"),
		SheetID:       os.Getenv("SHEET_ID"),
		ContactEmail:  getEnv("CONTACT_EMAIL", "support@morachkovskiyapp.com"),
	}
	cfg.WebAppURL, cfg.PublicURL = webAppURLs()

	var err error
	if cfg.TokenTTL, err = durationEnv("TOKEN_TTL", 72*time.Hour); err != nil {
		return nil, err
	}
	if cfg.InitDataMaxAge, err = durationEnv("INIT_DATA_MAX_AGE", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = floatEnv("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	burst, err := floatEnv("RATE_LIMIT_BURST", 30)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst = int(burst)

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// SheetsEnabled reports whether onboarding rows should be mirrored to a sheet.
func (c *Config) SheetsEnabled() bool {
	return c.SheetsKeyFile != "" && c.SheetID != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
