package team_directory_client

const (
	// TeamsEndpoint is appended to the configured base URL, which is expected
	// to end with a slash.
	TeamsEndpoint = "teams/"

	AcceptHeader    = "Accept"
	JsonContentType = "application/json"
)
