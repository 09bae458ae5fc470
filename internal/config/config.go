package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"waste-management-backend/pkg/utils"
)

type Config struct {
	Port           string
	DBDriver       string
	DatabaseURL    string
	AllowedOrigins []string
	LogLevel       string

	JWTSecret     string
	AuthRequired  bool
	AdminEmail    string
	AdminPassword string

	// Crew rows need a schedule and a team even when the caller omits them.
	DefaultScheduleID int64
	DefaultTeamID     int64

	BinAlertThreshold    float64
	OverdueSweepSchedule string
	SeedDemoData         bool

	FirebaseCredentialsBase64 string
	FirebaseCredentialsFile   string
}

const (
	DefaultPort              = "8000"
	DefaultDBDriver          = "postgres"
	DefaultBinAlertThreshold = 80
)

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Debug("⚠️  .env file not found, using environment variables from system")
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:                      getEnv("PORT", DefaultPort),
		DBDriver:                  strings.ToLower(getEnv("DB_DRIVER", DefaultDBDriver)),
		DatabaseURL:               os.Getenv("DATABASE_URL"),
		AllowedOrigins:            splitList(getEnv("ALLOWED_ORIGINS", "*")),
		LogLevel:                  os.Getenv("LOG_LEVEL"),
		JWTSecret:                 os.Getenv("APP_JWT_SECRET"),
		AdminEmail:                os.Getenv("ADMIN_EMAIL"),
		AdminPassword:             os.Getenv("ADMIN_PASSWORD"),
		OverdueSweepSchedule:      strings.TrimSpace(os.Getenv("OVERDUE_SWEEP_SCHEDULE")),
		FirebaseCredentialsBase64: os.Getenv("FIREBASE_CREDENTIALS_BASE64"),
		FirebaseCredentialsFile:   os.Getenv("FIREBASE_CREDENTIALS_FILE"),
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL environment variable is required")
	}
	switch cfg.DBDriver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (want postgres or sqlite)", cfg.DBDriver)
	}

	var err error
	if cfg.AuthRequired, err = getBool("AUTH_REQUIRED", false); err != nil {
		return nil, err
	}
	if cfg.SeedDemoData, err = getBool("SEED_DEMO_DATA", false); err != nil {
		return nil, err
	}
	if cfg.DefaultScheduleID, err = getInt("DEFAULT_SCHEDULE_ID", 1); err != nil {
		return nil, err
	}
	if cfg.DefaultTeamID, err = getInt("DEFAULT_TEAM_ID", 1); err != nil {
		return nil, err
	}
	if cfg.BinAlertThreshold, err = getFloat("BIN_ALERT_THRESHOLD", DefaultBinAlertThreshold); err != nil {
		return nil, err
	}

	if cfg.AuthRequired && cfg.JWTSecret == "" {
		return nil, errors.New("APP_JWT_SECRET is required when AUTH_REQUIRED is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getInt(key string, fallback int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
