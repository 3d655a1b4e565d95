package tournaments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/mcdev12/tourney/go/clients/team_directory_client"
	"github.com/mcdev12/tourney/go/internal/models"
)

type recordedEvent struct {
	TournamentID int64
	EventType    string
	Payload      any
}

type memoryState struct {
	nextID      int64
	tournaments map[int64]models.Tournament
	members     map[int64][]int64
	teams       map[int64]models.Team
	events      []recordedEvent
}

func (s memoryState) clone() memoryState {
	members := make(map[int64][]int64, len(s.members))
	for id, teamIDs := range s.members {
		members[id] = slices.Clone(teamIDs)
	}
	return memoryState{
		nextID:      s.nextID,
		tournaments: maps.Clone(s.tournaments),
		members:     members,
		teams:       maps.Clone(s.teams),
		events:      slices.Clone(s.events),
	}
}

// memoryRepo is an in-memory TournamentsRepository. InTx restores the
// previous state when fn fails.
type memoryRepo struct {
	state     memoryState
	failEvent string
	inTx      bool

	// set to emulate a concurrent writer winning a storage constraint
	createErr  error
	addTeamErr error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		state: memoryState{
			tournaments: map[int64]models.Tournament{},
			members:     map[int64][]int64{},
			teams:       map[int64]models.Team{},
		},
	}
}

func (m *memoryRepo) InTx(ctx context.Context, fn func(store TournamentsStore) error) error {
	snapshot := m.state.clone()
	m.inTx = true
	defer func() { m.inTx = false }()

	if err := fn(m); err != nil {
		m.state = snapshot
		return err
	}
	return nil
}

func (m *memoryRepo) GetTournament(ctx context.Context, id int64) (*models.Tournament, error) {
	tournament, ok := m.state.tournaments[id]
	if !ok {
		return nil, fmt.Errorf("failed to get tournament: %w", sql.ErrNoRows)
	}
	return m.withTeams(tournament), nil
}

func (m *memoryRepo) GetTournamentByNameIgnoreCase(ctx context.Context, name string) (*models.Tournament, error) {
	for _, tournament := range m.state.tournaments {
		if strings.EqualFold(tournament.Name, name) {
			return m.withTeams(tournament), nil
		}
	}
	return nil, fmt.Errorf("failed to get tournament by name: %w", sql.ErrNoRows)
}

func (m *memoryRepo) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	_, err := m.GetTournamentByNameIgnoreCase(ctx, name)
	return err == nil, nil
}

func (m *memoryRepo) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	ids := slices.Sorted(maps.Keys(m.state.tournaments))
	tournaments := make([]models.Tournament, 0, len(ids))
	for _, id := range ids {
		tournaments = append(tournaments, *m.withTeams(m.state.tournaments[id]))
	}
	return tournaments, nil
}

func (m *memoryRepo) CreateTournament(ctx context.Context, name string) (*models.Tournament, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.state.nextID++
	now := time.Now()
	tournament := models.Tournament{ID: m.state.nextID, Name: name, CreatedAt: now, UpdatedAt: now}
	m.state.tournaments[tournament.ID] = tournament
	return m.withTeams(tournament), nil
}

func (m *memoryRepo) UpdateTournamentName(ctx context.Context, id int64, name string) (*models.Tournament, error) {
	tournament, ok := m.state.tournaments[id]
	if !ok {
		return nil, fmt.Errorf("failed to update tournament name: %w", sql.ErrNoRows)
	}
	tournament.Name = name
	tournament.UpdatedAt = time.Now()
	m.state.tournaments[id] = tournament
	return m.withTeams(tournament), nil
}

func (m *memoryRepo) DeleteTournament(ctx context.Context, id int64) error {
	if _, ok := m.state.tournaments[id]; !ok {
		return fmt.Errorf("failed to delete tournament: %w", sql.ErrNoRows)
	}
	delete(m.state.tournaments, id)
	delete(m.state.members, id)
	return nil
}

func (m *memoryRepo) AddTournamentTeam(ctx context.Context, tournamentID, teamID int64) error {
	if m.addTeamErr != nil {
		return m.addTeamErr
	}
	if slices.Contains(m.state.members[tournamentID], teamID) {
		return fmt.Errorf("failed to add team %d: %w", teamID, ErrTeamAlreadyInTournament)
	}
	if _, ok := m.state.teams[teamID]; !ok {
		return errors.New("foreign key violation on team_id")
	}
	m.state.members[tournamentID] = append(m.state.members[tournamentID], teamID)
	return nil
}

func (m *memoryRepo) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	team, ok := m.state.teams[id]
	if !ok {
		return nil, fmt.Errorf("failed to get team: %w", sql.ErrNoRows)
	}
	return &team, nil
}

func (m *memoryRepo) CreateTeam(ctx context.Context, id int64, name string) (*models.Team, error) {
	if _, ok := m.state.teams[id]; ok {
		return nil, fmt.Errorf("failed to create team: duplicate id %d", id)
	}
	team := models.Team{ID: id, Name: name, CreatedAt: time.Now()}
	m.state.teams[id] = team
	return &team, nil
}

func (m *memoryRepo) RecordEvent(ctx context.Context, tournamentID int64, eventType string, payload any) error {
	if !m.inTx {
		return errors.New("event recorded outside a transaction")
	}
	if eventType == m.failEvent {
		return fmt.Errorf("failed to insert %s outbox event: boom", eventType)
	}
	m.state.events = append(m.state.events, recordedEvent{
		TournamentID: tournamentID,
		EventType:    eventType,
		Payload:      payload,
	})
	return nil
}

func (m *memoryRepo) withTeams(tournament models.Tournament) *models.Tournament {
	tournament.Teams = []models.Team{}
	for _, teamID := range m.state.members[tournament.ID] {
		tournament.Teams = append(tournament.Teams, m.state.teams[teamID])
	}
	return &tournament
}

// fakeDirectory answers lookups from a fixed set of teams
type fakeDirectory struct {
	teams map[int64]string
	calls int
}

func (f *fakeDirectory) RetrieveTeamByID(ctx context.Context, id int64) (*team_directory_client.Team, bool) {
	f.calls++
	name, ok := f.teams[id]
	if !ok {
		return nil, false
	}
	return &team_directory_client.Team{ID: id, Name: name}, true
}

func newLocalTeam(id int64, name string) models.Team {
	return models.Team{ID: id, Name: name, CreatedAt: time.Now()}
}
