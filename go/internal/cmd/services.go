package main

import (
	"database/sql"

	"github.com/mcdev12/tourney/go/clients/team_directory_client"
	"github.com/mcdev12/tourney/go/internal/teams"
	teamsdb "github.com/mcdev12/tourney/go/internal/teams/db"
	"github.com/mcdev12/tourney/go/internal/tournaments"
)

type Services struct {
	Teams           *teams.Service
	Tournaments     *tournaments.Service
	TournamentsREST *tournaments.RESTHandler
}

func setupServices(database *sql.DB, cfg *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer

	// Teams
	teamsQueries := teamsdb.New(database)
	teamsRepo := teams.NewRepository(teamsQueries)
	teamsApp := teams.NewApp(teamsRepo)
	teamsService := teams.NewService(teamsApp)

	// Team directory
	directory := team_directory_client.NewTeamDirectoryClient(cfg.TeamService.BaseURL)
	directory.SetTimeout(cfg.TeamService.Timeout)

	// Tournaments
	tournamentsRepo := tournaments.NewRepository(database)
	tournamentsApp := tournaments.NewApp(tournamentsRepo, directory)

	return &Services{
		Teams:           teamsService,
		Tournaments:     tournaments.NewService(tournamentsApp),
		TournamentsREST: tournaments.NewRESTHandler(tournamentsApp),
	}
}
