package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAppName        = "StonkBot"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultDataDir        = "storage"
	defaultSymbol         = "GME"
	defaultMarketTimezone = "America/New_York"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour
	defaultBegCooldown    = 24 * time.Hour

	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	idemTTLSecondsEnvVar   = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar       = "IDEMPOTENCY_TTL"
	begCooldownSecsEnvVar  = "BEG_COOLDOWN_SECONDS"
	begCooldownDurEnvVar   = "BEG_COOLDOWN"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName          string
	AppEnv           string
	Port             string
	LogLevel         string
	DataDir          string
	RedisURL         string // optional: cooldown and idempotency disable without it
	PredictionSymbol string
	MarketTimezone   string
	PriceBaseURL     string // optional override of the market-data endpoint
	OwnerTokenHash   string // bcrypt hash guarding owner commands
	ShutdownPeriod   time.Duration
	IdempotencyTTL   time.Duration
	BegCooldown      time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:          getEnv("APP_NAME", defaultAppName),
		AppEnv:           getEnv("APP_ENV", defaultAppEnv),
		Port:             getEnv("PORT", defaultPort),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DataDir:          getEnv("DATA_DIR", defaultDataDir),
		RedisURL:         os.Getenv("REDIS_URL"),
		PredictionSymbol: getEnv("PREDICTION_SYMBOL", defaultSymbol),
		MarketTimezone:   getEnv("MARKET_TIMEZONE", defaultMarketTimezone),
		PriceBaseURL:     os.Getenv("PRICE_BASE_URL"),
		OwnerTokenHash:   os.Getenv("OWNER_TOKEN_HASH"),
	}

	var err error
	if cfg.ShutdownPeriod, err = durationEnv(shutdownSecondsEnvVar, shutdownDurationEnvVar, defaultShutdownDelay); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationEnv(idemTTLSecondsEnvVar, idemTTLDurEnvVar, defaultIdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.BegCooldown, err = durationEnv(begCooldownSecsEnvVar, begCooldownDurEnvVar, defaultBegCooldown); err != nil {
		return Config{}, err
	}

	if _, err := time.LoadLocation(cfg.MarketTimezone); err != nil {
		return Config{}, fmt.Errorf("invalid MARKET_TIMEZONE: %w", err)
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// MarketLocation resolves the configured market timezone. Load has already
// validated it.
func (c Config) MarketLocation() *time.Location {
	loc, err := time.LoadLocation(c.MarketTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// LedgerPath returns the ledger document path.
func (c Config) LedgerPath() string { return filepath.Join(c.DataDir, "bank.json") }

// PredictionsPath returns the open-predictions document path.
func (c Config) PredictionsPath() string { return filepath.Join(c.DataDir, "predictions_today.json") }

// LeaderboardPath returns the prediction-leaderboard document path.
func (c Config) LeaderboardPath() string {
	return filepath.Join(c.DataDir, "prediction_leaderboards.json")
}

// TimezonesPath returns the timezone-assignments document path.
func (c Config) TimezonesPath() string { return filepath.Join(c.DataDir, "timezones.json") }

func durationEnv(secondsVar, durationVar string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsVar, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationVar, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
