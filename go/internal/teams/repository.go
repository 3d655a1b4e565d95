package teams

import (
	"context"
	"fmt"

	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/mcdev12/tourney/go/internal/teams/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	CreateTeam(ctx context.Context, arg db.CreateTeamParams) (db.Team, error)
	GetTeam(ctx context.Context, id int64) (db.Team, error)
	ListTeams(ctx context.Context) ([]db.Team, error)
	ListTeamsByTournament(ctx context.Context, tournamentID int64) ([]db.Team, error)
}

// Repository implements team data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new teams repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// CreateTeam stores a team under the given id
func (r *Repository) CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error) {
	dbTeam, err := r.queries.CreateTeam(ctx, db.CreateTeamParams{
		ID:   id,
		Name: name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// GetTeam retrieves a team by ID. A missing team yields an error wrapping
// sql.ErrNoRows.
func (r *Repository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	dbTeam, err := r.queries.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return r.dbTeamToModel(dbTeam), nil
}

// ListTeams retrieves all teams
func (r *Repository) ListTeams(ctx context.Context) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

// ListTeamsByTournament retrieves the teams attached to a tournament
func (r *Repository) ListTeamsByTournament(ctx context.Context, tournamentID int64) ([]models.Team, error) {
	dbTeams, err := r.queries.ListTeamsByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams by tournament: %w", err)
	}

	return r.dbTeamsToModels(dbTeams), nil
}

func (r *Repository) dbTeamsToModels(dbTeams []db.Team) []models.Team {
	teams := make([]models.Team, len(dbTeams))
	for i, dbTeam := range dbTeams {
		teams[i] = *r.dbTeamToModel(dbTeam)
	}
	return teams
}

// dbTeamToModel converts a database team to domain model
func (r *Repository) dbTeamToModel(dbTeam db.Team) *models.Team {
	return &models.Team{
		ID:        dbTeam.ID,
		Name:      dbTeam.Name,
		CreatedAt: dbTeam.CreatedAt,
	}
}
