package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mcdev12/tourney/go/internal/outbox/db"
	"github.com/mcdev12/tourney/go/internal/sqlutil"
	"github.com/sqlc-dev/pqtype"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) error
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]db.TournamentOutbox, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}

type Repository struct {
	queries Querier
}

func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// InsertEvent stores a new unsent event. Callers run it inside the transaction
// that performs the state change it describes.
func (r *Repository) InsertEvent(ctx context.Context, tournamentID int64, eventType string, payload []byte, headers map[string]string) error {
	if len(payload) == 0 {
		return fmt.Errorf("event payload cannot be empty")
	}

	var rawHeaders pqtype.NullRawMessage
	if len(headers) > 0 {
		data, err := json.Marshal(headers)
		if err != nil {
			return fmt.Errorf("failed to marshal outbox headers: %w", err)
		}
		rawHeaders = pqtype.NullRawMessage{RawMessage: data, Valid: true}
	}

	err := r.queries.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		EventType:    eventType,
		Payload:      payload,
		Headers:      rawHeaders,
	})
	if err != nil {
		return fmt.Errorf("failed to insert %s outbox event: %w", eventType, err)
	}
	return nil
}

func (r *Repository) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	rows, err := r.queries.FetchUnsentOutbox(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	events := make([]Event, len(rows))
	for i, row := range rows {
		event, err := rowToEvent(row)
		if err != nil {
			return nil, err
		}
		events[i] = event
	}

	return events, nil
}

func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkOutboxSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark outbox event as sent: %w", err)
	}
	return nil
}

func rowToEvent(row db.TournamentOutbox) (Event, error) {
	event := Event{
		ID:           row.ID,
		TournamentID: row.TournamentID,
		EventType:    row.EventType,
		Payload:      row.Payload,
		CreatedAt:    row.CreatedAt,
		SentAt:       sqlutil.FromSqlTime(row.SentAt),
	}
	if row.Headers.Valid {
		if err := json.Unmarshal(row.Headers.RawMessage, &event.Headers); err != nil {
			return Event{}, fmt.Errorf("failed to unmarshal headers of outbox event %s: %w", row.ID, err)
		}
	}
	return event, nil
}
