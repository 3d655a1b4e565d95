package team_directory_client

import (
	"github.com/mcdev12/tourney/go/clients"
)

type TeamDirectoryClient struct {
	*clients.BaseClient
}

func NewTeamDirectoryClient(baseURL string) *TeamDirectoryClient {
	client := &TeamDirectoryClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(AcceptHeader, JsonContentType)

	return client
}
