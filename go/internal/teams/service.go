package teams

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	teamv1 "github.com/mcdev12/tourney/go/internal/api/team/v1"
	"github.com/mcdev12/tourney/go/internal/api/team/v1/teamv1connect"
	"github.com/mcdev12/tourney/go/internal/models"
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListTeams(ctx context.Context) ([]models.Team, error)
}

// Service implements the TeamService RPC interface
type Service struct {
	app TeamsApp
}

// NewService creates a new teams RPC service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// Verify that Service implements the TeamServiceHandler interface
var _ teamv1connect.TeamServiceHandler = (*Service)(nil)

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[teamv1.GetTeamRequest]) (*connect.Response[teamv1.GetTeamResponse], error) {
	team, err := s.app.GetTeam(ctx, req.Msg.Id)
	if err != nil {
		if errors.Is(err, ErrTeamNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	return connect.NewResponse(&teamv1.GetTeamResponse{
		Team: TeamToProto(team),
	}), nil
}

// ListTeams retrieves all locally known teams
func (s *Service) ListTeams(ctx context.Context, req *connect.Request[teamv1.ListTeamsRequest]) (*connect.Response[teamv1.ListTeamsResponse], error) {
	teams, err := s.app.ListTeams(ctx)
	if err != nil {
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	protoTeams := make([]*teamv1.Team, len(teams))
	for i := range teams {
		protoTeams[i] = TeamToProto(&teams[i])
	}

	return connect.NewResponse(&teamv1.ListTeamsResponse{
		Teams: protoTeams,
	}), nil
}

// TeamToProto converts a domain team to its wire representation. It is shared
// with the tournament service, which embeds teams in its responses.
func TeamToProto(team *models.Team) *teamv1.Team {
	proto := &teamv1.Team{
		Id:   team.ID,
		Name: team.Name,
	}
	if !team.CreatedAt.IsZero() {
		proto.CreatedAt = team.CreatedAt.UTC().Format(time.RFC3339)
	}
	return proto
}
