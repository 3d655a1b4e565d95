package models

import "time"

// Tournament represents a named competition and its participating teams
type Tournament struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Teams     []Team    `json:"teams"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindTeam returns the member team with the given id, if any.
func (t *Tournament) FindTeam(teamID int64) (Team, bool) {
	for _, team := range t.Teams {
		if team.ID == teamID {
			return team, true
		}
	}
	return Team{}, false
}
