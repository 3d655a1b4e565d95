package tournamentv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/mcdev12/tourney/go/internal/api/jsoncodec"
	v1 "github.com/mcdev12/tourney/go/internal/api/tournament/v1"
)

const (
	// TournamentServiceName is the fully-qualified name of the TournamentService service.
	TournamentServiceName = "tournament.v1.TournamentService"
)

const (
	TournamentServiceCreateTournamentProcedure = "/tournament.v1.TournamentService/CreateTournament"
	TournamentServiceGetTournamentProcedure    = "/tournament.v1.TournamentService/GetTournament"
	TournamentServiceListTournamentsProcedure  = "/tournament.v1.TournamentService/ListTournaments"
	TournamentServiceUpdateTournamentProcedure = "/tournament.v1.TournamentService/UpdateTournament"
	TournamentServiceDeleteTournamentProcedure = "/tournament.v1.TournamentService/DeleteTournament"
	TournamentServiceAddTeamProcedure          = "/tournament.v1.TournamentService/AddTeam"
)

// TournamentServiceClient is a client for the tournament.v1.TournamentService service.
type TournamentServiceClient interface {
	CreateTournament(context.Context, *connect.Request[v1.CreateTournamentRequest]) (*connect.Response[v1.CreateTournamentResponse], error)
	GetTournament(context.Context, *connect.Request[v1.GetTournamentRequest]) (*connect.Response[v1.GetTournamentResponse], error)
	ListTournaments(context.Context, *connect.Request[v1.ListTournamentsRequest]) (*connect.Response[v1.ListTournamentsResponse], error)
	UpdateTournament(context.Context, *connect.Request[v1.UpdateTournamentRequest]) (*connect.Response[v1.UpdateTournamentResponse], error)
	DeleteTournament(context.Context, *connect.Request[v1.DeleteTournamentRequest]) (*connect.Response[v1.DeleteTournamentResponse], error)
	AddTeam(context.Context, *connect.Request[v1.AddTeamRequest]) (*connect.Response[v1.AddTeamResponse], error)
}

// NewTournamentServiceClient constructs a client for the tournament.v1.TournamentService
// service using the JSON codec.
func NewTournamentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TournamentServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsoncodec.Codec{})}, opts...)
	return &tournamentServiceClient{
		createTournament: connect.NewClient[v1.CreateTournamentRequest, v1.CreateTournamentResponse](
			httpClient, baseURL+TournamentServiceCreateTournamentProcedure, connect.WithClientOptions(opts...),
		),
		getTournament: connect.NewClient[v1.GetTournamentRequest, v1.GetTournamentResponse](
			httpClient, baseURL+TournamentServiceGetTournamentProcedure, connect.WithClientOptions(opts...),
		),
		listTournaments: connect.NewClient[v1.ListTournamentsRequest, v1.ListTournamentsResponse](
			httpClient, baseURL+TournamentServiceListTournamentsProcedure, connect.WithClientOptions(opts...),
		),
		updateTournament: connect.NewClient[v1.UpdateTournamentRequest, v1.UpdateTournamentResponse](
			httpClient, baseURL+TournamentServiceUpdateTournamentProcedure, connect.WithClientOptions(opts...),
		),
		deleteTournament: connect.NewClient[v1.DeleteTournamentRequest, v1.DeleteTournamentResponse](
			httpClient, baseURL+TournamentServiceDeleteTournamentProcedure, connect.WithClientOptions(opts...),
		),
		addTeam: connect.NewClient[v1.AddTeamRequest, v1.AddTeamResponse](
			httpClient, baseURL+TournamentServiceAddTeamProcedure, connect.WithClientOptions(opts...),
		),
	}
}

type tournamentServiceClient struct {
	createTournament *connect.Client[v1.CreateTournamentRequest, v1.CreateTournamentResponse]
	getTournament    *connect.Client[v1.GetTournamentRequest, v1.GetTournamentResponse]
	listTournaments  *connect.Client[v1.ListTournamentsRequest, v1.ListTournamentsResponse]
	updateTournament *connect.Client[v1.UpdateTournamentRequest, v1.UpdateTournamentResponse]
	deleteTournament *connect.Client[v1.DeleteTournamentRequest, v1.DeleteTournamentResponse]
	addTeam          *connect.Client[v1.AddTeamRequest, v1.AddTeamResponse]
}

func (c *tournamentServiceClient) CreateTournament(ctx context.Context, req *connect.Request[v1.CreateTournamentRequest]) (*connect.Response[v1.CreateTournamentResponse], error) {
	return c.createTournament.CallUnary(ctx, req)
}

func (c *tournamentServiceClient) GetTournament(ctx context.Context, req *connect.Request[v1.GetTournamentRequest]) (*connect.Response[v1.GetTournamentResponse], error) {
	return c.getTournament.CallUnary(ctx, req)
}

func (c *tournamentServiceClient) ListTournaments(ctx context.Context, req *connect.Request[v1.ListTournamentsRequest]) (*connect.Response[v1.ListTournamentsResponse], error) {
	return c.listTournaments.CallUnary(ctx, req)
}

func (c *tournamentServiceClient) UpdateTournament(ctx context.Context, req *connect.Request[v1.UpdateTournamentRequest]) (*connect.Response[v1.UpdateTournamentResponse], error) {
	return c.updateTournament.CallUnary(ctx, req)
}

func (c *tournamentServiceClient) DeleteTournament(ctx context.Context, req *connect.Request[v1.DeleteTournamentRequest]) (*connect.Response[v1.DeleteTournamentResponse], error) {
	return c.deleteTournament.CallUnary(ctx, req)
}

func (c *tournamentServiceClient) AddTeam(ctx context.Context, req *connect.Request[v1.AddTeamRequest]) (*connect.Response[v1.AddTeamResponse], error) {
	return c.addTeam.CallUnary(ctx, req)
}

// TournamentServiceHandler is an implementation of the tournament.v1.TournamentService service.
type TournamentServiceHandler interface {
	CreateTournament(context.Context, *connect.Request[v1.CreateTournamentRequest]) (*connect.Response[v1.CreateTournamentResponse], error)
	GetTournament(context.Context, *connect.Request[v1.GetTournamentRequest]) (*connect.Response[v1.GetTournamentResponse], error)
	ListTournaments(context.Context, *connect.Request[v1.ListTournamentsRequest]) (*connect.Response[v1.ListTournamentsResponse], error)
	UpdateTournament(context.Context, *connect.Request[v1.UpdateTournamentRequest]) (*connect.Response[v1.UpdateTournamentResponse], error)
	DeleteTournament(context.Context, *connect.Request[v1.DeleteTournamentRequest]) (*connect.Response[v1.DeleteTournamentResponse], error)
	AddTeam(context.Context, *connect.Request[v1.AddTeamRequest]) (*connect.Response[v1.AddTeamResponse], error)
}

// NewTournamentServiceHandler builds an HTTP handler from the service implementation. It
// returns the path on which to mount the handler and the handler itself.
func NewTournamentServiceHandler(svc TournamentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsoncodec.Codec{})}, opts...)
	handlerOpts := connect.WithHandlerOptions(opts...)

	createTournamentHandler := connect.NewUnaryHandler(TournamentServiceCreateTournamentProcedure, svc.CreateTournament, handlerOpts)
	getTournamentHandler := connect.NewUnaryHandler(TournamentServiceGetTournamentProcedure, svc.GetTournament, handlerOpts)
	listTournamentsHandler := connect.NewUnaryHandler(TournamentServiceListTournamentsProcedure, svc.ListTournaments, handlerOpts)
	updateTournamentHandler := connect.NewUnaryHandler(TournamentServiceUpdateTournamentProcedure, svc.UpdateTournament, handlerOpts)
	deleteTournamentHandler := connect.NewUnaryHandler(TournamentServiceDeleteTournamentProcedure, svc.DeleteTournament, handlerOpts)
	addTeamHandler := connect.NewUnaryHandler(TournamentServiceAddTeamProcedure, svc.AddTeam, handlerOpts)

	return "/tournament.v1.TournamentService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TournamentServiceCreateTournamentProcedure:
			createTournamentHandler.ServeHTTP(w, r)
		case TournamentServiceGetTournamentProcedure:
			getTournamentHandler.ServeHTTP(w, r)
		case TournamentServiceListTournamentsProcedure:
			listTournamentsHandler.ServeHTTP(w, r)
		case TournamentServiceUpdateTournamentProcedure:
			updateTournamentHandler.ServeHTTP(w, r)
		case TournamentServiceDeleteTournamentProcedure:
			deleteTournamentHandler.ServeHTTP(w, r)
		case TournamentServiceAddTeamProcedure:
			addTeamHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
