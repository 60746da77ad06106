package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once at startup from environment variables.
type Config struct {
	Port           string
	RedisAddr      string // empty disables the event feed
	RoomCapacity   int
	StatusInterval time.Duration
	CORSAllow      []string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		RedisAddr:      getEnvOrDefault("REDIS_ADDR", ""),
		RoomCapacity:   getEnvInt("ROOM_CAPACITY", 8),
		StatusInterval: time.Duration(getEnvInt("STATUS_INTERVAL_SECONDS", 30)) * time.Second,
		CORSAllow:      splitCSV(getEnvOrDefault("CORS_ALLOW_ORIGINS", "*")),
	}
	if cfg.RoomCapacity < 1 {
		return nil, errors.New("ROOM_CAPACITY must be at least 1")
	}
	if cfg.StatusInterval <= 0 {
		return nil, errors.New("STATUS_INTERVAL_SECONDS must be positive")
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func splitCSV(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
