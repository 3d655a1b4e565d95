package main

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mcdev12/tourney/go/internal/outbox"
)

// RelayConfig holds the relay settings read from the environment
type RelayConfig struct {
	NatsURL      string        `env:"NATS_URL"`
	PollInterval time.Duration `env:"OUTBOX_POLL_INTERVAL"`
	BatchSize    int32         `env:"OUTBOX_BATCH_SIZE"`
}

func loadRelayConfig() (RelayConfig, error) {
	defaults := outbox.DefaultConfig()
	cfg := RelayConfig{
		NatsURL:      outbox.DefaultJetStreamConfig().URL,
		PollInterval: defaults.PollInterval,
		BatchSize:    defaults.BatchSize,
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return RelayConfig{}, fmt.Errorf("failed to read relay config from environment: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return RelayConfig{}, fmt.Errorf("OUTBOX_POLL_INTERVAL must be positive, got %v", cfg.PollInterval)
	}
	if cfg.BatchSize <= 0 {
		return RelayConfig{}, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	return cfg, nil
}
