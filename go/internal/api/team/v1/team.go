// Package teamv1 holds the messages of the team.v1.TeamService RPC API.
package teamv1

type Team struct {
	Id        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type GetTeamRequest struct {
	Id int64 `json:"id"`
}

type GetTeamResponse struct {
	Team *Team `json:"team"`
}

type ListTeamsRequest struct{}

type ListTeamsResponse struct {
	Teams []*Team `json:"teams"`
}
