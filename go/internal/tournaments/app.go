package tournaments

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mcdev12/tourney/go/clients/team_directory_client"
	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/rs/zerolog/log"
)

// TournamentsStore defines the data operations available inside a
// transaction
type TournamentsStore interface {
	GetTournament(ctx context.Context, id int64) (*models.Tournament, error)
	GetTournamentByNameIgnoreCase(ctx context.Context, name string) (*models.Tournament, error)
	ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	CreateTournament(ctx context.Context, name string) (*models.Tournament, error)
	UpdateTournamentName(ctx context.Context, id int64, name string) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int64) error
	AddTournamentTeam(ctx context.Context, tournamentID, teamID int64) error
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error)
	RecordEvent(ctx context.Context, tournamentID int64, eventType string, payload any) error
}

// TournamentsRepository defines what the app layer needs from the repository
type TournamentsRepository interface {
	TournamentsStore
	InTx(ctx context.Context, fn func(store TournamentsStore) error) error
}

// TeamDirectory resolves team ids the local store does not know
type TeamDirectory interface {
	RetrieveTeamByID(ctx context.Context, id int64) (*team_directory_client.Team, bool)
}

// App handles tournament business logic
type App struct {
	repo      TournamentsRepository
	directory TeamDirectory
}

// NewApp creates a new tournaments App
func NewApp(repo TournamentsRepository, directory TeamDirectory) *App {
	return &App{
		repo:      repo,
		directory: directory,
	}
}

// CreateTournament creates a tournament with no teams. Names are unique
// ignoring case.
func (a *App) CreateTournament(ctx context.Context, name string) (*models.Tournament, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	var created *models.Tournament
	err := a.repo.InTx(ctx, func(store TournamentsStore) error {
		exists, err := store.ExistsByNameIgnoreCase(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return &DuplicateNameError{Name: name}
		}

		tournament, err := store.CreateTournament(ctx, name)
		if err != nil {
			return err
		}

		if err := store.RecordEvent(ctx, tournament.ID, EventTournamentCreated, TournamentCreatedPayload{
			TournamentID: tournament.ID,
			Name:         tournament.Name,
		}); err != nil {
			return err
		}

		created = tournament
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("tournament_id", created.ID).Str("name", created.Name).Msg("created tournament")
	return created, nil
}

// GetTournament retrieves a tournament by ID
func (a *App) GetTournament(ctx context.Context, id int64) (*models.Tournament, error) {
	tournament, err := a.repo.GetTournament(ctx, id)
	if err != nil {
		return nil, notFound(err, id)
	}
	return tournament, nil
}

// ListTournaments retrieves all tournaments
func (a *App) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	return a.repo.ListTournaments(ctx)
}

// DeleteTournament deletes a tournament. Its teams remain known locally.
func (a *App) DeleteTournament(ctx context.Context, id int64) error {
	var deleted *models.Tournament
	err := a.repo.InTx(ctx, func(store TournamentsStore) error {
		tournament, err := store.GetTournament(ctx, id)
		if err != nil {
			return notFound(err, id)
		}

		if err := store.DeleteTournament(ctx, id); err != nil {
			return notFound(err, id)
		}

		if err := store.RecordEvent(ctx, id, EventTournamentDeleted, TournamentDeletedPayload{
			TournamentID: id,
			Name:         tournament.Name,
		}); err != nil {
			return err
		}

		deleted = tournament
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int64("tournament_id", id).Str("name", deleted.Name).Msg("deleted tournament")
	return nil
}

// UpdateTournament renames a tournament. Renaming to its own name in any case
// is allowed.
func (a *App) UpdateTournament(ctx context.Context, id int64, name string) (*models.Tournament, error) {
	if name == "" {
		return nil, ErrNameRequired
	}

	var updated *models.Tournament
	var oldName string
	err := a.repo.InTx(ctx, func(store TournamentsStore) error {
		current, err := store.GetTournament(ctx, id)
		if err != nil {
			return notFound(err, id)
		}

		holder, err := store.GetTournamentByNameIgnoreCase(ctx, name)
		switch {
		case err == nil && holder.ID != id:
			return &DuplicateNameError{Name: name}
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			return err
		}

		tournament, err := store.UpdateTournamentName(ctx, id, name)
		if err != nil {
			return notFound(err, id)
		}

		if err := store.RecordEvent(ctx, id, EventTournamentRenamed, TournamentRenamedPayload{
			TournamentID: id,
			OldName:      current.Name,
			NewName:      tournament.Name,
		}); err != nil {
			return err
		}

		oldName = current.Name
		updated = tournament
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().Int64("tournament_id", id).Str("old_name", oldName).Str("name", updated.Name).Msg("renamed tournament")
	return updated, nil
}

// AddTeam attaches a team to a tournament. A team unknown locally is looked
// up in the team directory and stored under the requested id before it is
// linked.
func (a *App) AddTeam(ctx context.Context, tournamentID, teamID int64) (*models.Tournament, error) {
	var updated *models.Tournament
	var materialized bool
	err := a.repo.InTx(ctx, func(store TournamentsStore) error {
		tournament, err := store.GetTournament(ctx, tournamentID)
		if err != nil {
			return notFound(err, tournamentID)
		}

		if member, ok := tournament.FindTeam(teamID); ok {
			return &TeamAlreadyInTournamentError{TeamName: member.Name, TournamentName: tournament.Name}
		}

		team, created, err := a.resolveTeam(ctx, store, teamID)
		if err != nil {
			return err
		}

		if err := store.AddTournamentTeam(ctx, tournament.ID, team.ID); err != nil {
			if errors.Is(err, ErrTeamAlreadyInTournament) {
				return &TeamAlreadyInTournamentError{TeamName: team.Name, TournamentName: tournament.Name}
			}
			return err
		}

		if err := store.RecordEvent(ctx, tournament.ID, EventTeamAdded, TeamAddedPayload{
			TournamentID: tournament.ID,
			TeamID:       team.ID,
			TeamName:     team.Name,
			Materialized: created,
		}); err != nil {
			return err
		}

		tournament.Teams = append(tournament.Teams, *team)
		updated = tournament
		materialized = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("tournament_id", tournamentID).
		Int64("team_id", teamID).
		Bool("materialized", materialized).
		Msg("added team to tournament")
	return updated, nil
}

// resolveTeam returns the local team with the given id, creating it from the
// team directory when only the directory knows it.
func (a *App) resolveTeam(ctx context.Context, store TournamentsStore, teamID int64) (*models.Team, bool, error) {
	team, err := store.GetTeam(ctx, teamID)
	if err == nil {
		return team, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}

	remote, ok := a.directory.RetrieveTeamByID(ctx, teamID)
	if !ok {
		return nil, false, &InvalidTeamError{TeamID: teamID}
	}

	team, err = store.CreateTeam(ctx, teamID, remote.Name)
	if err != nil {
		return nil, false, err
	}
	return team, true, nil
}

// notFound converts a missing-row error into a NotFoundError for the
// tournament id
func notFound(err error, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &NotFoundError{Entity: "tournament", ID: id}
	}
	return err
}
