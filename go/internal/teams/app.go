package teams

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mcdev12/tourney/go/internal/models"
)

// ErrTeamNotFound is returned when no local team has the requested id
var ErrTeamNotFound = errors.New("team not found")

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
}

// App exposes read access to locally known teams
type App struct {
	repo TeamsRepository
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, err := a.repo.GetTeam(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("team %d: %w", id, ErrTeamNotFound)
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams retrieves all teams
func (a *App) ListTeams(ctx context.Context) ([]models.Team, error) {
	teams, err := a.repo.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}
