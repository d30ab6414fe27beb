package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-multierror"
)

// Config holds all configuration for the application
type Config struct {
	SteamID        string
	SteamAPIKey    string
	ITADKey        string
	Country        string
	ITADShopID     int
	SteamAppsPath  string
	DatabaseURL    string
	LogLevel       string
	TelegramToken  string
	TelegramChatID int64
}

// Steam's numeric shop id on ITAD.
const defaultITADShopID = 61

// Load loads configuration from environment variables. Which variables are
// actually required depends on the command; validation is separate so each
// command can abort with a complete list of what it is missing.
func Load() (*Config, error) {
	cfg := &Config{
		SteamID:       os.Getenv("STEAM_ID"),
		SteamAPIKey:   os.Getenv("STEAM_API_KEY"),
		ITADKey:       os.Getenv("ITAD_KEY"),
		Country:       getEnvOrDefault("COUNTRY", "US"),
		SteamAppsPath: getEnvOrDefault("STEAMAPPS_PATH", defaultSteamAppsPath()),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	cfg.ITADShopID = defaultITADShopID
	if raw := os.Getenv("ITAD_SHOP_ID"); raw != "" {
		shopID, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid ITAD_SHOP_ID %q: %w", raw, err)
		}
		cfg.ITADShopID = shopID
	}

	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		cfg.TelegramChatID = chatID
	}

	return cfg, nil
}

// ValidateCheck reports every variable the check command is missing.
func (c *Config) ValidateCheck() error {
	var result *multierror.Error
	if c.SteamID == "" {
		result = multierror.Append(result, fmt.Errorf("STEAM_ID environment variable is required"))
	}
	if c.SteamAPIKey == "" {
		result = multierror.Append(result, fmt.Errorf("STEAM_API_KEY environment variable is required"))
	}
	if c.ITADKey == "" {
		result = multierror.Append(result, fmt.Errorf("ITAD_KEY environment variable is required"))
	}
	return result.ErrorOrNil()
}

// ValidateSync reports every variable the sync command is missing.
func (c *Config) ValidateSync() error {
	var result *multierror.Error
	if c.SteamID == "" {
		result = multierror.Append(result, fmt.Errorf("STEAM_ID environment variable is required"))
	}
	if c.SteamAPIKey == "" {
		result = multierror.Append(result, fmt.Errorf("STEAM_API_KEY environment variable is required"))
	}
	if c.DatabaseURL == "" {
		result = multierror.Append(result, fmt.Errorf("DATABASE_URL environment variable is required"))
	}
	return result.ErrorOrNil()
}

// TelegramEnabled reports whether both Telegram variables are configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

func defaultSteamAppsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".steam", "steam", "steamapps")
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
