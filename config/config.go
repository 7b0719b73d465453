package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// DefaultAdminKey matches the reference deployment. Anyone who guesses three
// digits can read and reset every roster, so leaving it in place is only
// acceptable on a trusted network.
const DefaultAdminKey = "112"

type Config struct {
	Port     string
	DataDir  string
	AdminKey string
	BaseURL  string
	LogoPath string
}

// Load builds the configuration from the environment. Every field has a
// working default so a bare `rollcall` starts locally without a .env file.
func Load() (*Config, error) {
	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		DataDir:  getEnv("DATA_DIR", "./data"),
		AdminKey: getEnv("ADMIN_KEY", DefaultAdminKey),
		BaseURL:  strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),
		LogoPath: getEnv("LOGO_FILE", ""),
	}

	if cfg.AdminKey == DefaultAdminKey {
		slog.Warn("ADMIN_KEY is the insecure default, set a real secret before going public")
	}
	if cfg.LogoPath != "" {
		if _, err := os.Stat(cfg.LogoPath); err != nil {
			return nil, fmt.Errorf("LOGO_FILE %q not readable: %w", cfg.LogoPath, err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
