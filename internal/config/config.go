package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config carries everything the process reads from the environment. One
// running instance has exactly one API base URL; every outbound call uses it.
type Config struct {
	HTTPPort       string
	APIBaseURL     string
	SessionSecret  string
	SessionTTL     time.Duration
	GatewayTimeout time.Duration
}

// FromEnv assembles the configuration. The caller is expected to have run
// godotenv.Load already.
func FromEnv() (Config, error) {
	cfg := Config{
		HTTPPort:       os.Getenv("HTTP_PORT"),
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		SessionTTL:     24 * time.Hour,
		GatewayTimeout: 30 * time.Second,
	}
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "3000"
	}
	if cfg.APIBaseURL == "" {
		return Config{}, errors.New("API_BASE_URL is empty")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is empty")
	}
	if s := os.Getenv("SESSION_TTL"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			cfg.SessionTTL = d
		}
	}
	if s := os.Getenv("GATEWAY_TIMEOUT"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			cfg.GatewayTimeout = time.Duration(n) * time.Second
		}
	}
	return cfg, nil
}
