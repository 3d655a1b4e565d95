package tournaments

// Outbox event types written alongside each mutation.
const (
	EventTournamentCreated = "tournament.created"
	EventTournamentRenamed = "tournament.renamed"
	EventTournamentDeleted = "tournament.deleted"
	EventTeamAdded         = "tournament.team_added"
)

type TournamentCreatedPayload struct {
	TournamentID int64  `json:"tournament_id"`
	Name         string `json:"name"`
}

type TournamentRenamedPayload struct {
	TournamentID int64  `json:"tournament_id"`
	OldName      string `json:"old_name"`
	NewName      string `json:"new_name"`
}

type TournamentDeletedPayload struct {
	TournamentID int64  `json:"tournament_id"`
	Name         string `json:"name"`
}

type TeamAddedPayload struct {
	TournamentID int64  `json:"tournament_id"`
	TeamID       int64  `json:"team_id"`
	TeamName     string `json:"team_name"`
	Materialized bool   `json:"materialized"`
}
