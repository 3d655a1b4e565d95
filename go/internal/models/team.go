package models

import "time"

// Team represents a team known to this system, either created locally or
// materialized from the team directory.
type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
