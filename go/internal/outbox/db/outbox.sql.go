package db

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

const insertOutboxEvent = `
INSERT INTO tournament_outbox (id, tournament_id, event_type, payload, headers)
VALUES ($1, $2, $3, $4, $5)
`

type InsertOutboxEventParams struct {
	ID           uuid.UUID
	TournamentID int64
	EventType    string
	Payload      json.RawMessage
	Headers      pqtype.NullRawMessage
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, arg InsertOutboxEventParams) error {
	_, err := q.db.ExecContext(ctx, insertOutboxEvent,
		arg.ID,
		arg.TournamentID,
		arg.EventType,
		arg.Payload,
		arg.Headers,
	)
	return err
}

const fetchUnsentOutbox = `
SELECT id, tournament_id, event_type, payload, headers, created_at, sent_at
FROM tournament_outbox
WHERE sent_at IS NULL
ORDER BY created_at, id
LIMIT $1
`

func (q *Queries) FetchUnsentOutbox(ctx context.Context, limit int32) ([]TournamentOutbox, error) {
	rows, err := q.db.QueryContext(ctx, fetchUnsentOutbox, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []TournamentOutbox
	for rows.Next() {
		var i TournamentOutbox
		if err := rows.Scan(
			&i.ID,
			&i.TournamentID,
			&i.EventType,
			&i.Payload,
			&i.Headers,
			&i.CreatedAt,
			&i.SentAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markOutboxSent = `
UPDATE tournament_outbox
SET sent_at = now()
WHERE id = $1 AND sent_at IS NULL
`

func (q *Queries) MarkOutboxSent(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, markOutboxSent, id)
	return err
}
