package tournaments

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	teamv1 "github.com/mcdev12/tourney/go/internal/api/team/v1"
	tournamentv1 "github.com/mcdev12/tourney/go/internal/api/tournament/v1"
	"github.com/mcdev12/tourney/go/internal/api/tournament/v1/tournamentv1connect"
	"github.com/mcdev12/tourney/go/internal/models"
	"github.com/mcdev12/tourney/go/internal/teams"
	"github.com/rs/zerolog/log"
)

// TournamentsApp defines what the transports need from the tournaments
// application
type TournamentsApp interface {
	CreateTournament(ctx context.Context, name string) (*models.Tournament, error)
	GetTournament(ctx context.Context, id int64) (*models.Tournament, error)
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	UpdateTournament(ctx context.Context, id int64, name string) (*models.Tournament, error)
	DeleteTournament(ctx context.Context, id int64) error
	AddTeam(ctx context.Context, tournamentID, teamID int64) (*models.Tournament, error)
}

// Service implements the TournamentService RPC interface
type Service struct {
	app TournamentsApp
}

// NewService creates a new tournaments RPC service
func NewService(app TournamentsApp) *Service {
	return &Service{
		app: app,
	}
}

// Verify that Service implements the TournamentServiceHandler interface
var _ tournamentv1connect.TournamentServiceHandler = (*Service)(nil)

// CreateTournament creates a new tournament
func (s *Service) CreateTournament(ctx context.Context, req *connect.Request[tournamentv1.CreateTournamentRequest]) (*connect.Response[tournamentv1.CreateTournamentResponse], error) {
	tournament, err := s.app.CreateTournament(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tournamentv1.CreateTournamentResponse{
		Tournament: TournamentToProto(tournament),
	}), nil
}

// GetTournament retrieves a tournament by ID
func (s *Service) GetTournament(ctx context.Context, req *connect.Request[tournamentv1.GetTournamentRequest]) (*connect.Response[tournamentv1.GetTournamentResponse], error) {
	tournament, err := s.app.GetTournament(ctx, req.Msg.Id)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tournamentv1.GetTournamentResponse{
		Tournament: TournamentToProto(tournament),
	}), nil
}

// ListTournaments retrieves all tournaments
func (s *Service) ListTournaments(ctx context.Context, req *connect.Request[tournamentv1.ListTournamentsRequest]) (*connect.Response[tournamentv1.ListTournamentsResponse], error) {
	tournaments, err := s.app.ListTournaments(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	protoTournaments := make([]*tournamentv1.Tournament, len(tournaments))
	for i := range tournaments {
		protoTournaments[i] = TournamentToProto(&tournaments[i])
	}

	return connect.NewResponse(&tournamentv1.ListTournamentsResponse{
		Tournaments: protoTournaments,
	}), nil
}

// UpdateTournament renames a tournament
func (s *Service) UpdateTournament(ctx context.Context, req *connect.Request[tournamentv1.UpdateTournamentRequest]) (*connect.Response[tournamentv1.UpdateTournamentResponse], error) {
	tournament, err := s.app.UpdateTournament(ctx, req.Msg.Id, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tournamentv1.UpdateTournamentResponse{
		Tournament: TournamentToProto(tournament),
	}), nil
}

// DeleteTournament deletes a tournament
func (s *Service) DeleteTournament(ctx context.Context, req *connect.Request[tournamentv1.DeleteTournamentRequest]) (*connect.Response[tournamentv1.DeleteTournamentResponse], error) {
	if err := s.app.DeleteTournament(ctx, req.Msg.Id); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tournamentv1.DeleteTournamentResponse{
		Success: true,
	}), nil
}

// AddTeam attaches a team to a tournament
func (s *Service) AddTeam(ctx context.Context, req *connect.Request[tournamentv1.AddTeamRequest]) (*connect.Response[tournamentv1.AddTeamResponse], error) {
	tournament, err := s.app.AddTeam(ctx, req.Msg.TournamentId, req.Msg.TeamId)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&tournamentv1.AddTeamResponse{
		Tournament: TournamentToProto(tournament),
	}), nil
}

// toConnectError maps domain errors onto connect codes
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, ErrDuplicateName), errors.Is(err, ErrTeamAlreadyInTournament):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, ErrInvalidTeam), errors.Is(err, ErrNameRequired):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		log.Error().Err(err).Msg("tournament request failed")
		return connect.NewError(connect.CodeInternal, err)
	}
}

// TournamentToProto converts a domain tournament to its wire representation
func TournamentToProto(tournament *models.Tournament) *tournamentv1.Tournament {
	protoTeams := make([]*teamv1.Team, len(tournament.Teams))
	for i := range tournament.Teams {
		protoTeams[i] = teams.TeamToProto(&tournament.Teams[i])
	}

	proto := &tournamentv1.Tournament{
		Id:    tournament.ID,
		Name:  tournament.Name,
		Teams: protoTeams,
	}
	if !tournament.CreatedAt.IsZero() {
		proto.CreatedAt = tournament.CreatedAt.UTC().Format(time.RFC3339)
	}
	if !tournament.UpdatedAt.IsZero() {
		proto.UpdatedAt = tournament.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return proto
}
