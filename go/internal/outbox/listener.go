package outbox

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// NotifyChannel is the channel the outbox insert trigger notifies on
const NotifyChannel = "tournament_outbox_events"

type ListenerConfig struct {
	DatabaseURL  string
	Channel      string
	PingInterval time.Duration
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		Channel:      NotifyChannel,
		PingInterval: 90 * time.Second,
	}
}

// Listener turns Postgres NOTIFY messages into worker wake-ups so events are
// relayed without waiting for the poll interval.
type Listener struct {
	listener *pq.Listener
	cfg      ListenerConfig
}

func NewListener(cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("outbox listener event")
			}
		},
	)
	if err := l.Listen(cfg.Channel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen to channel %s: %w", cfg.Channel, err)
	}

	log.Info().Str("channel", cfg.Channel).Msg("listening for outbox notifications")

	return &Listener{listener: l, cfg: cfg}, nil
}

// Run calls wake for every notification until ctx is cancelled.
func (l *Listener) Run(ctx context.Context, wake func()) error {
	pingTicker := time.NewTicker(l.cfg.PingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return l.listener.Close()
		case note := <-l.listener.Notify:
			// nil means the connection was re-established; notifications may
			// have been missed while it was down.
			if note == nil {
				log.Warn().Msg("outbox listener reconnected")
			}
			wake()
		case <-pingTicker.C:
			if err := l.listener.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping outbox listener")
			}
		}
	}
}
