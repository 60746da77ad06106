package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("ROOM_CAPACITY", "")
	t.Setenv("STATUS_INTERVAL_SECONDS", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected event feed disabled by default, got %s", cfg.RedisAddr)
	}
	if cfg.RoomCapacity != 8 {
		t.Fatalf("expected default capacity 8, got %d", cfg.RoomCapacity)
	}
	if cfg.StatusInterval != 30*time.Second {
		t.Fatalf("expected default status interval 30s, got %s", cfg.StatusInterval)
	}
	if len(cfg.CORSAllow) != 1 || cfg.CORSAllow[0] != "*" {
		t.Fatalf("expected wildcard CORS default, got %v", cfg.CORSAllow)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ROOM_CAPACITY", "4")
	t.Setenv("STATUS_INTERVAL_SECONDS", "5")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "9000" || cfg.RoomCapacity != 4 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.StatusInterval != 5*time.Second {
		t.Fatalf("expected 5s interval, got %s", cfg.StatusInterval)
	}
	if len(cfg.CORSAllow) != 2 || cfg.CORSAllow[1] != "http://b.example" {
		t.Fatalf("unexpected CORS list: %v", cfg.CORSAllow)
	}
}

func TestLoadConfigRejectsBadCapacity(t *testing.T) {
	t.Setenv("ROOM_CAPACITY", "0")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for zero capacity")
	}

	t.Setenv("ROOM_CAPACITY", "")
	t.Setenv("STATUS_INTERVAL_SECONDS", "-1")
	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for negative status interval")
	}
}
