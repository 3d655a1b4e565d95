package db

import (
	"time"
)

type Tournament struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TournamentTeam struct {
	TournamentID int64     `json:"tournament_id"`
	TeamID       int64     `json:"team_id"`
	AddedAt      time.Time `json:"added_at"`
}
