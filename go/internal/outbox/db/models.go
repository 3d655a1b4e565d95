package db

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"
)

type TournamentOutbox struct {
	ID           uuid.UUID
	TournamentID int64
	EventType    string
	Payload      json.RawMessage
	Headers      pqtype.NullRawMessage
	CreatedAt    time.Time
	SentAt       sql.NullTime
}
