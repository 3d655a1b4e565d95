package team_directory_client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
)

// Team is the directory's representation of a team
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// RetrieveTeamByID fetches a team from the directory.
//
// Every failure (transport error, non-2xx status, undecodable or nameless
// body) is reported as absence; callers cannot tell "unknown team" apart from
// "directory unreachable".
func (c *TeamDirectoryClient) RetrieveTeamByID(ctx context.Context, id int64) (*Team, bool) {
	team, err := c.getTeam(ctx, id)
	if err != nil {
		log.Debug().
			Err(err).
			Int64("team_id", id).
			Str("base_url", c.BaseURL()).
			Msg("team directory lookup failed")
		return nil, false
	}
	return team, true
}

func (c *TeamDirectoryClient) getTeam(ctx context.Context, id int64) (*Team, error) {
	body, err := c.Get(ctx, TeamsEndpoint+strconv.FormatInt(id, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var team Team
	if err := json.Unmarshal(body, &team); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w, raw response: %s", err, string(body))
	}
	if team.Name == "" {
		return nil, fmt.Errorf("team %d has no name, raw response: %s", id, string(body))
	}

	return &team, nil
}
