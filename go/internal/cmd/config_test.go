package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.Server.Port)
	}
	if cfg.Database.Database != "tourney" {
		t.Errorf("expected default database tourney, got %q", cfg.Database.Database)
	}
	if !cfg.Migrations.Enabled {
		t.Error("expected migrations enabled by default")
	}
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9000"
  shutdown_timeout: 3s
database:
  host: db.internal
  name: cups
team_service:
  base_url: http://teams.internal/api/
log:
  level: debug
`)
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("TEAM_SERVICE_URL", "http://directory:8081/")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}

	if cfg.Server.Port != "9100" {
		t.Errorf("expected env port 9100, got %q", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("expected shutdown timeout 3s, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Database != "cups" {
		t.Errorf("unexpected database config %+v", cfg.Database)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("expected default database port, got %d", cfg.Database.Port)
	}
	if cfg.TeamService.BaseURL != "http://directory:8081/" {
		t.Errorf("expected env team service url, got %q", cfg.TeamService.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level debug, got %q", cfg.Log.Level)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated")

	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfig_EnvironmentOverridesNestedSections(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
log:
  level: debug
`)
	t.Setenv("DB_HOST", "db.override")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("TEAM_SERVICE_TIMEOUT", "2s")

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig returned error: %v", err)
	}

	if cfg.Database.Host != "db.override" {
		t.Errorf("expected env database host, got %q", cfg.Database.Host)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected env log level warn, got %q", cfg.Log.Level)
	}
	if cfg.TeamService.Timeout != 2*time.Second {
		t.Errorf("expected env team service timeout 2s, got %v", cfg.TeamService.Timeout)
	}
	if cfg.TeamService.BaseURL != "http://localhost:8081/api/" {
		t.Errorf("expected default team service url, got %q", cfg.TeamService.BaseURL)
	}
}
