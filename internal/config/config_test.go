package config_test

import (
	"testing"
	"time"

	"github.com/community-board-api/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("Expected default request timeout 10s, got %v", cfg.Server.RequestTimeout)
	}
	if cfg.Database.Name != "community_board" {
		t.Errorf("Expected default db name, got %s", cfg.Database.Name)
	}
	if cfg.Auth.Required {
		t.Error("Auth must default to disabled")
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default token TTL 24h, got %v", cfg.Auth.TokenTTL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "board_test")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_TTL", "2h")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Name != "board_test" {
		t.Errorf("Expected db name board_test, got %s", cfg.Database.Name)
	}
	if !cfg.Auth.Required {
		t.Error("Expected auth required")
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("Expected token TTL 2h, got %v", cfg.Auth.TokenTTL)
	}
}

func TestGetDSN(t *testing.T) {
	dbCfg := config.DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", Name: "board", SSLMode: "disable",
	}

	want := "host=db port=5433 user=u password=p dbname=board sslmode=disable"
	if got := dbCfg.GetDSN(); got != want {
		t.Errorf("Expected DSN %q, got %q", want, got)
	}
}
