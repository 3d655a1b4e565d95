package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is a tournament domain event waiting in the outbox
type Event struct {
	ID           uuid.UUID         `json:"id"`
	TournamentID int64             `json:"tournament_id"`
	EventType    string            `json:"event_type"`
	Payload      json.RawMessage   `json:"payload"`
	Headers      map[string]string `json:"headers,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
}

// Publisher delivers an outbox event to the message bus
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
