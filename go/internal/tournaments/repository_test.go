package tournaments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/mcdev12/tourney/go/internal/sqlutil"
	"github.com/mcdev12/tourney/go/internal/tournaments/db"
)

type fakeQuerier struct {
	tournaments map[int64]db.Tournament
	createErr   error
	updateErr   error
	addTeamErr  error
	deleteRows  int64
}

func (f *fakeQuerier) AddTournamentTeam(ctx context.Context, arg db.AddTournamentTeamParams) (db.TournamentTeam, error) {
	if f.addTeamErr != nil {
		return db.TournamentTeam{}, f.addTeamErr
	}
	return db.TournamentTeam{TournamentID: arg.TournamentID, TeamID: arg.TeamID, AddedAt: time.Now()}, nil
}

func (f *fakeQuerier) CreateTournament(ctx context.Context, name string) (db.Tournament, error) {
	if f.createErr != nil {
		return db.Tournament{}, f.createErr
	}
	return db.Tournament{ID: 1, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}, nil
}

func (f *fakeQuerier) DeleteTournament(ctx context.Context, id int64) (int64, error) {
	return f.deleteRows, nil
}

func (f *fakeQuerier) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	return false, nil
}

func (f *fakeQuerier) GetTournament(ctx context.Context, id int64) (db.Tournament, error) {
	tournament, ok := f.tournaments[id]
	if !ok {
		return db.Tournament{}, sql.ErrNoRows
	}
	return tournament, nil
}

func (f *fakeQuerier) GetTournamentByNameIgnoreCase(ctx context.Context, name string) (db.Tournament, error) {
	return db.Tournament{}, sql.ErrNoRows
}

func (f *fakeQuerier) ListTournaments(ctx context.Context) ([]db.Tournament, error) {
	var tournaments []db.Tournament
	for _, tournament := range f.tournaments {
		tournaments = append(tournaments, tournament)
	}
	return tournaments, nil
}

func (f *fakeQuerier) UpdateTournamentName(ctx context.Context, arg db.UpdateTournamentNameParams) (db.Tournament, error) {
	if f.updateErr != nil {
		return db.Tournament{}, f.updateErr
	}
	return db.Tournament{ID: arg.ID, Name: arg.Name}, nil
}

type fakeTeamStore struct {
	members map[int64][]models.Team
}

func (f *fakeTeamStore) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	return nil, fmt.Errorf("failed to get team: %w", sql.ErrNoRows)
}

func (f *fakeTeamStore) CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error) {
	return &models.Team{ID: id, Name: name}, nil
}

func (f *fakeTeamStore) ListTeamsByTournament(ctx context.Context, tournamentID int64) ([]models.Team, error) {
	members := f.members[tournamentID]
	if members == nil {
		members = []models.Team{}
	}
	return members, nil
}

type fakeEventWriter struct {
	eventType string
	payload   []byte
	headers   map[string]string
}

func (f *fakeEventWriter) InsertEvent(ctx context.Context, tournamentID int64, eventType string, payload []byte, headers map[string]string) error {
	f.eventType = eventType
	f.payload = payload
	f.headers = headers
	return nil
}

func newFakeRepository(q *fakeQuerier) (*Repository, *fakeTeamStore, *fakeEventWriter) {
	teamStore := &fakeTeamStore{members: map[int64][]models.Team{}}
	events := &fakeEventWriter{}
	return &Repository{queries: q, teams: teamStore, events: events}, teamStore, events
}

func uniqueViolation(constraint string) error {
	return &pq.Error{Code: sqlutil.UniqueViolation, Constraint: constraint}
}

func TestRepository_CreateTournament_NameIndexViolation(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{createErr: uniqueViolation(nameUniqueIndex)})

	_, err := repo.CreateTournament(context.Background(), "Cup")
	var dupErr *DuplicateNameError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dupErr.Name != "Cup" {
		t.Errorf("expected name Cup, got %q", dupErr.Name)
	}
}

func TestRepository_CreateTournament_OtherErrorsAreWrapped(t *testing.T) {
	boom := errors.New("connection reset")
	repo, _, _ := newFakeRepository(&fakeQuerier{createErr: boom})

	_, err := repo.CreateTournament(context.Background(), "Cup")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped driver error, got %v", err)
	}
	if errors.Is(err, ErrDuplicateName) {
		t.Error("did not expect a duplicate name error")
	}
}

func TestRepository_CreateTournament_StartsWithoutTeams(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{})

	tournament, err := repo.CreateTournament(context.Background(), "Cup")
	if err != nil {
		t.Fatalf("CreateTournament returned error: %v", err)
	}
	if tournament.Teams == nil || len(tournament.Teams) != 0 {
		t.Errorf("expected empty non-nil teams, got %#v", tournament.Teams)
	}
}

func TestRepository_UpdateTournamentName_NameIndexViolation(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{updateErr: uniqueViolation(nameUniqueIndex)})

	_, err := repo.UpdateTournamentName(context.Background(), 1, "Shield")
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
}

func TestRepository_AddTournamentTeam(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantDuplicate bool
	}{
		{"membership key violation", uniqueViolation(membershipPrimaryKey), true},
		{"other unique violation", uniqueViolation("teams_pkey"), false},
		{"foreign key violation", &pq.Error{Code: "23503", Constraint: "tournament_teams_team_id_fkey"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, _ := newFakeRepository(&fakeQuerier{addTeamErr: tt.err})

			err := repo.AddTournamentTeam(context.Background(), 1, 42)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrTeamAlreadyInTournament); got != tt.wantDuplicate {
				t.Errorf("errors.Is(err, ErrTeamAlreadyInTournament) = %v, want %v (%v)", got, tt.wantDuplicate, err)
			}
		})
	}
}

func TestRepository_DeleteTournament_NoRowsIsNotFound(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{deleteRows: 0})

	err := repo.DeleteTournament(context.Background(), 9)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
	if !errors.Is(notFound(err, 9), ErrNotFound) {
		t.Error("expected app mapping to NotFoundError")
	}
}

func TestRepository_DeleteTournament(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{deleteRows: 1})

	if err := repo.DeleteTournament(context.Background(), 9); err != nil {
		t.Fatalf("DeleteTournament returned error: %v", err)
	}
}

func TestRepository_GetTournament_LoadsTeams(t *testing.T) {
	q := &fakeQuerier{tournaments: map[int64]db.Tournament{3: {ID: 3, Name: "Cup"}}}
	repo, teamStore, _ := newFakeRepository(q)
	teamStore.members[3] = []models.Team{{ID: 42, Name: "Reds"}}

	tournament, err := repo.GetTournament(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetTournament returned error: %v", err)
	}
	if len(tournament.Teams) != 1 || tournament.Teams[0].Name != "Reds" {
		t.Errorf("unexpected teams %+v", tournament.Teams)
	}

	if _, err := repo.GetTournament(context.Background(), 4); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows for missing tournament, got %v", err)
	}
}

func TestRepository_RecordEvent(t *testing.T) {
	repo, _, events := newFakeRepository(&fakeQuerier{})

	err := repo.RecordEvent(context.Background(), 3, EventTournamentCreated, TournamentCreatedPayload{TournamentID: 3, Name: "Cup"})
	if err != nil {
		t.Fatalf("RecordEvent returned error: %v", err)
	}
	if events.eventType != EventTournamentCreated {
		t.Errorf("expected %s, got %s", EventTournamentCreated, events.eventType)
	}
	var payload TournamentCreatedPayload
	if err := json.Unmarshal(events.payload, &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload.Name != "Cup" || events.headers["Content-Type"] != "application/json" {
		t.Errorf("unexpected event payload %+v headers %v", payload, events.headers)
	}
}

func TestRepository_InTx_RequiresDatabaseHandle(t *testing.T) {
	repo, _, _ := newFakeRepository(&fakeQuerier{})

	called := false
	err := repo.InTx(context.Background(), func(store TournamentsStore) error {
		called = true
		return nil
	})
	if err == nil {
		t.Fatal("expected error from a transaction-bound repository")
	}
	if called {
		t.Error("expected fn not to run")
	}
}
