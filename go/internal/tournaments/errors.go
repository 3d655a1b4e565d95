package tournaments

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound                = errors.New("not found")
	ErrDuplicateName           = errors.New("duplicate tournament name")
	ErrInvalidTeam             = errors.New("invalid team")
	ErrTeamAlreadyInTournament = errors.New("team already in tournament")
	ErrNameRequired            = errors.New("tournament name is required")
)

// NotFoundError reports a missing entity. It matches ErrNotFound.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// DuplicateNameError reports a name already held by another tournament,
// compared case-insensitively. It matches ErrDuplicateName.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("tournament with name %q already exists", e.Name)
}

func (e *DuplicateNameError) Unwrap() error { return ErrDuplicateName }

// InvalidTeamError reports a team id unknown locally and to the team
// directory. It matches ErrInvalidTeam.
type InvalidTeamError struct {
	TeamID int64
}

func (e *InvalidTeamError) Error() string {
	return fmt.Sprintf("team with id %d does not exist", e.TeamID)
}

func (e *InvalidTeamError) Unwrap() error { return ErrInvalidTeam }

// TeamAlreadyInTournamentError matches ErrTeamAlreadyInTournament.
type TeamAlreadyInTournamentError struct {
	TeamName       string
	TournamentName string
}

func (e *TeamAlreadyInTournamentError) Error() string {
	return fmt.Sprintf("team %q is already in tournament %q", e.TeamName, e.TournamentName)
}

func (e *TeamAlreadyInTournamentError) Unwrap() error { return ErrTeamAlreadyInTournament }
