package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mcdev12/tourney/go/internal/dbconfig"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

type Config struct {
	Server struct {
		Port            string        `yaml:"port" env:"SERVER_PORT"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database dbconfig.Config `yaml:"database"`

	Migrations struct {
		Enabled bool `yaml:"enabled" env:"RUN_MIGRATIONS"`
	} `yaml:"migrations"`

	TeamService struct {
		BaseURL string        `yaml:"base_url" env:"TEAM_SERVICE_URL"`
		Timeout time.Duration `yaml:"timeout" env:"TEAM_SERVICE_TIMEOUT"`
	} `yaml:"team_service"`

	Log struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Pretty bool   `yaml:"pretty" env:"LOG_PRETTY"`
	} `yaml:"log"`
}

func defaultConfig() Config {
	var cfg Config
	cfg.Server.Port = "8080"
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Database = dbconfig.Default()
	cfg.Migrations.Enabled = true
	cfg.TeamService.BaseURL = "http://localhost:8081/api/"
	cfg.TeamService.Timeout = 5 * time.Second
	cfg.Log.Level = "info"
	cfg.Log.Pretty = true
	return cfg
}

// loadConfig layers the YAML file at path and then the environment over the
// defaults. A missing file leaves the defaults in place.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cleanenv.ReadEnv(&config); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}

	if config.TeamService.BaseURL == "" {
		return nil, fmt.Errorf("team_service.base_url is required")
	}
	return &config, nil
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}
