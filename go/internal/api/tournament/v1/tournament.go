// Package tournamentv1 holds the messages of the
// tournament.v1.TournamentService RPC API.
package tournamentv1

import (
	teamv1 "github.com/mcdev12/tourney/go/internal/api/team/v1"
)

type Tournament struct {
	Id        int64          `json:"id"`
	Name      string         `json:"name"`
	Teams     []*teamv1.Team `json:"teams"`
	CreatedAt string         `json:"createdAt,omitempty"`
	UpdatedAt string         `json:"updatedAt,omitempty"`
}

type CreateTournamentRequest struct {
	Name string `json:"name"`
}

type CreateTournamentResponse struct {
	Tournament *Tournament `json:"tournament"`
}

type GetTournamentRequest struct {
	Id int64 `json:"id"`
}

type GetTournamentResponse struct {
	Tournament *Tournament `json:"tournament"`
}

type ListTournamentsRequest struct{}

type ListTournamentsResponse struct {
	Tournaments []*Tournament `json:"tournaments"`
}

type UpdateTournamentRequest struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type UpdateTournamentResponse struct {
	Tournament *Tournament `json:"tournament"`
}

type DeleteTournamentRequest struct {
	Id int64 `json:"id"`
}

type DeleteTournamentResponse struct {
	Success bool `json:"success"`
}

type AddTeamRequest struct {
	TournamentId int64 `json:"tournamentId"`
	TeamId       int64 `json:"teamId"`
}

type AddTeamResponse struct {
	Tournament *Tournament `json:"tournament"`
}
