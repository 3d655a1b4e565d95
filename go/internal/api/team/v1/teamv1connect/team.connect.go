package teamv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mcdev12/tourney/go/internal/api/jsoncodec"
	v1 "github.com/mcdev12/tourney/go/internal/api/team/v1"
)

const (
	// TeamServiceName is the fully-qualified name of the TeamService service.
	TeamServiceName = "team.v1.TeamService"
)

const (
	// TeamServiceGetTeamProcedure is the fully-qualified name of the TeamService's GetTeam RPC.
	TeamServiceGetTeamProcedure = "/team.v1.TeamService/GetTeam"
	// TeamServiceListTeamsProcedure is the fully-qualified name of the TeamService's ListTeams RPC.
	TeamServiceListTeamsProcedure = "/team.v1.TeamService/ListTeams"
)

// TeamServiceClient is a client for the team.v1.TeamService service.
type TeamServiceClient interface {
	GetTeam(context.Context, *connect.Request[v1.GetTeamRequest]) (*connect.Response[v1.GetTeamResponse], error)
	ListTeams(context.Context, *connect.Request[v1.ListTeamsRequest]) (*connect.Response[v1.ListTeamsResponse], error)
}

// NewTeamServiceClient constructs a client for the team.v1.TeamService service using the JSON codec.
func NewTeamServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TeamServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsoncodec.Codec{})}, opts...)
	return &teamServiceClient{
		getTeam: connect.NewClient[v1.GetTeamRequest, v1.GetTeamResponse](
			httpClient,
			baseURL+TeamServiceGetTeamProcedure,
			connect.WithClientOptions(opts...),
		),
		listTeams: connect.NewClient[v1.ListTeamsRequest, v1.ListTeamsResponse](
			httpClient,
			baseURL+TeamServiceListTeamsProcedure,
			connect.WithClientOptions(opts...),
		),
	}
}

type teamServiceClient struct {
	getTeam   *connect.Client[v1.GetTeamRequest, v1.GetTeamResponse]
	listTeams *connect.Client[v1.ListTeamsRequest, v1.ListTeamsResponse]
}

func (c *teamServiceClient) GetTeam(ctx context.Context, req *connect.Request[v1.GetTeamRequest]) (*connect.Response[v1.GetTeamResponse], error) {
	return c.getTeam.CallUnary(ctx, req)
}

func (c *teamServiceClient) ListTeams(ctx context.Context, req *connect.Request[v1.ListTeamsRequest]) (*connect.Response[v1.ListTeamsResponse], error) {
	return c.listTeams.CallUnary(ctx, req)
}

// TeamServiceHandler is an implementation of the team.v1.TeamService service.
type TeamServiceHandler interface {
	GetTeam(context.Context, *connect.Request[v1.GetTeamRequest]) (*connect.Response[v1.GetTeamResponse], error)
	ListTeams(context.Context, *connect.Request[v1.ListTeamsRequest]) (*connect.Response[v1.ListTeamsResponse], error)
}

// NewTeamServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewTeamServiceHandler(svc TeamServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsoncodec.Codec{})}, opts...)
	getTeamHandler := connect.NewUnaryHandler(
		TeamServiceGetTeamProcedure,
		svc.GetTeam,
		connect.WithHandlerOptions(opts...),
	)
	listTeamsHandler := connect.NewUnaryHandler(
		TeamServiceListTeamsProcedure,
		svc.ListTeams,
		connect.WithHandlerOptions(opts...),
	)
	return "/team.v1.TeamService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TeamServiceGetTeamProcedure:
			getTeamHandler.ServeHTTP(w, r)
		case TeamServiceListTeamsProcedure:
			listTeamsHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
