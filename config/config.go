package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	StoreDriver    string
	DatabaseDSN    string
	SeedFile       string
	CORSOrigins    []string
	RateLimitRPS   float64
	RateLimitBurst int
	TrustedProxies []string
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getlist(k, def string) []string {
	var out []string
	for _, part := range strings.Split(getenv(k, def), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load reads the environment, after loading .env files when present.
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...) // missing .env is fine

	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		GinMode:        getenv("GIN_MODE", "debug"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		StoreDriver:    strings.ToLower(getenv("STORE_DRIVER", "memory")),
		DatabaseDSN:    getenv("DATABASE_DSN", "file::memory:?cache=shared"),
		SeedFile:       os.Getenv("SEED_FILE"),
		CORSOrigins:    getlist("CORS_ORIGINS", "*"),
		TrustedProxies: getlist("TRUSTED_PROXIES", "127.0.0.1"),
	}

	rps, err := strconv.ParseFloat(getenv("RATE_LIMIT_RPS", "50"), 64)
	if err != nil || rps < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", os.Getenv("RATE_LIMIT_RPS"))
	}
	cfg.RateLimitRPS = rps

	burst, err := strconv.Atoi(getenv("RATE_LIMIT_BURST", "100"))
	if err != nil || burst < 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", os.Getenv("RATE_LIMIT_BURST"))
	}
	cfg.RateLimitBurst = burst

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: must be debug, release or test", cfg.GinMode)
	}

	switch cfg.StoreDriver {
	case "memory", "sqlite", "mysql":
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: must be memory, sqlite or mysql", cfg.StoreDriver)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
