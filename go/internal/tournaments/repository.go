package tournaments

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/mcdev12/tourney/go/internal/outbox"
	outboxdb "github.com/mcdev12/tourney/go/internal/outbox/db"
	"github.com/mcdev12/tourney/go/internal/sqlutil"
	"github.com/mcdev12/tourney/go/internal/teams"
	teamsdb "github.com/mcdev12/tourney/go/internal/teams/db"
	"github.com/mcdev12/tourney/go/internal/tournaments/db"
)

// Constraint names from the tournaments migration.
const (
	nameUniqueIndex      = "tournaments_name_lower_key"
	membershipPrimaryKey = "tournament_teams_pkey"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	AddTournamentTeam(ctx context.Context, arg db.AddTournamentTeamParams) (db.TournamentTeam, error)
	CreateTournament(ctx context.Context, name string) (db.Tournament, error)
	DeleteTournament(ctx context.Context, id int64) (int64, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	GetTournament(ctx context.Context, id int64) (db.Tournament, error)
	GetTournamentByNameIgnoreCase(ctx context.Context, name string) (db.Tournament, error)
	ListTournaments(ctx context.Context) ([]db.Tournament, error)
	UpdateTournamentName(ctx context.Context, arg db.UpdateTournamentNameParams) (db.Tournament, error)
}

// TeamStore is the subset of the teams repository used for membership
type TeamStore interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error)
	ListTeamsByTournament(ctx context.Context, tournamentID int64) ([]models.Team, error)
}

// EventWriter appends outbox events
type EventWriter interface {
	InsertEvent(ctx context.Context, tournamentID int64, eventType string, payload []byte, headers map[string]string) error
}

// Repository implements tournament data access. Tournaments, the teams they
// reference and their outbox events share one connection or transaction.
type Repository struct {
	db      *sql.DB
	queries Querier
	teams   TeamStore
	events  EventWriter
}

// NewRepository creates a tournaments repository over a database handle
func NewRepository(database *sql.DB) *Repository {
	r := bindRepository(database)
	r.db = database
	return r
}

func bindRepository(conn db.DBTX) *Repository {
	return &Repository{
		queries: db.New(conn),
		teams:   teams.NewRepository(teamsdb.New(conn)),
		events:  outbox.NewRepository(outboxdb.New(conn)),
	}
}

// InTx runs fn against a repository bound to a single transaction. The
// transaction commits only if fn returns nil.
func (r *Repository) InTx(ctx context.Context, fn func(store TournamentsStore) error) error {
	if r.db == nil {
		return fmt.Errorf("repository is already bound to a transaction")
	}
	return sqlutil.Run(ctx, r.db,
		func(tx *sql.Tx) *Repository { return bindRepository(tx) },
		func(txRepo *Repository) error { return fn(txRepo) },
	)
}

// CreateTournament inserts a tournament with no teams
func (r *Repository) CreateTournament(ctx context.Context, name string) (*models.Tournament, error) {
	dbTournament, err := r.queries.CreateTournament(ctx, name)
	if err != nil {
		if sqlutil.IsUniqueViolation(err, nameUniqueIndex) {
			return nil, &DuplicateNameError{Name: name}
		}
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}

	tournament := r.dbTournamentToModel(dbTournament)
	tournament.Teams = []models.Team{}
	return tournament, nil
}

// GetTournament retrieves a tournament and its teams. A missing tournament
// yields an error wrapping sql.ErrNoRows.
func (r *Repository) GetTournament(ctx context.Context, id int64) (*models.Tournament, error) {
	dbTournament, err := r.queries.GetTournament(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament: %w", err)
	}

	return r.withTeams(ctx, dbTournament)
}

// GetTournamentByNameIgnoreCase retrieves the tournament whose name matches
// under case folding
func (r *Repository) GetTournamentByNameIgnoreCase(ctx context.Context, name string) (*models.Tournament, error) {
	dbTournament, err := r.queries.GetTournamentByNameIgnoreCase(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get tournament by name: %w", err)
	}

	return r.withTeams(ctx, dbTournament)
}

// ExistsByNameIgnoreCase reports whether any tournament holds name under case
// folding
func (r *Repository) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	exists, err := r.queries.ExistsByNameIgnoreCase(ctx, name)
	if err != nil {
		return false, fmt.Errorf("failed to check tournament name: %w", err)
	}
	return exists, nil
}

// ListTournaments retrieves all tournaments with their teams
func (r *Repository) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	dbTournaments, err := r.queries.ListTournaments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournaments: %w", err)
	}

	tournaments := make([]models.Tournament, 0, len(dbTournaments))
	for _, dbTournament := range dbTournaments {
		tournament, err := r.withTeams(ctx, dbTournament)
		if err != nil {
			return nil, err
		}
		tournaments = append(tournaments, *tournament)
	}
	return tournaments, nil
}

// UpdateTournamentName renames a tournament
func (r *Repository) UpdateTournamentName(ctx context.Context, id int64, name string) (*models.Tournament, error) {
	dbTournament, err := r.queries.UpdateTournamentName(ctx, db.UpdateTournamentNameParams{
		ID:   id,
		Name: name,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, nameUniqueIndex) {
			return nil, &DuplicateNameError{Name: name}
		}
		return nil, fmt.Errorf("failed to update tournament name: %w", err)
	}

	return r.withTeams(ctx, dbTournament)
}

// DeleteTournament removes a tournament and its membership rows
func (r *Repository) DeleteTournament(ctx context.Context, id int64) error {
	rows, err := r.queries.DeleteTournament(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete tournament: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("failed to delete tournament: %w", sql.ErrNoRows)
	}
	return nil
}

// AddTournamentTeam links an existing team to a tournament
func (r *Repository) AddTournamentTeam(ctx context.Context, tournamentID, teamID int64) error {
	_, err := r.queries.AddTournamentTeam(ctx, db.AddTournamentTeamParams{
		TournamentID: tournamentID,
		TeamID:       teamID,
	})
	if err != nil {
		if sqlutil.IsUniqueViolation(err, membershipPrimaryKey) {
			return fmt.Errorf("failed to add team %d: %w", teamID, ErrTeamAlreadyInTournament)
		}
		return fmt.Errorf("failed to add team to tournament: %w", err)
	}
	return nil
}

// GetTeam retrieves a locally known team
func (r *Repository) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	return r.teams.GetTeam(ctx, id)
}

// CreateTeam stores a team under the given id
func (r *Repository) CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error) {
	return r.teams.CreateTeam(ctx, id, name)
}

// RecordEvent appends an outbox event with a JSON payload
func (r *Repository) RecordEvent(ctx context.Context, tournamentID int64, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	headers := map[string]string{"Content-Type": "application/json"}
	return r.events.InsertEvent(ctx, tournamentID, eventType, data, headers)
}

func (r *Repository) withTeams(ctx context.Context, dbTournament db.Tournament) (*models.Tournament, error) {
	tournament := r.dbTournamentToModel(dbTournament)

	members, err := r.teams.ListTeamsByTournament(ctx, dbTournament.ID)
	if err != nil {
		return nil, err
	}
	tournament.Teams = members
	return tournament, nil
}

// dbTournamentToModel converts a database tournament to domain model
func (r *Repository) dbTournamentToModel(dbTournament db.Tournament) *models.Tournament {
	return &models.Tournament{
		ID:        dbTournament.ID,
		Name:      dbTournament.Name,
		CreatedAt: dbTournament.CreatedAt,
		UpdatedAt: dbTournament.UpdatedAt,
	}
}
