package db

import (
	"context"
)

const addTournamentTeam = `
INSERT INTO tournament_teams (tournament_id, team_id)
VALUES ($1, $2)
RETURNING tournament_id, team_id, added_at
`

type AddTournamentTeamParams struct {
	TournamentID int64
	TeamID       int64
}

func (q *Queries) AddTournamentTeam(ctx context.Context, arg AddTournamentTeamParams) (TournamentTeam, error) {
	row := q.db.QueryRowContext(ctx, addTournamentTeam, arg.TournamentID, arg.TeamID)
	var i TournamentTeam
	err := row.Scan(&i.TournamentID, &i.TeamID, &i.AddedAt)
	return i, err
}

const createTournament = `
INSERT INTO tournaments (name)
VALUES ($1)
RETURNING id, name, created_at, updated_at
`

func (q *Queries) CreateTournament(ctx context.Context, name string) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, createTournament, name)
	var i Tournament
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const deleteTournament = `
DELETE FROM tournaments
WHERE id = $1
`

func (q *Queries) DeleteTournament(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTournament, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const existsByNameIgnoreCase = `
SELECT EXISTS (
    SELECT 1 FROM tournaments
    WHERE lower(name) = lower($1)
)
`

func (q *Queries) ExistsByNameIgnoreCase(ctx context.Context, name string) (bool, error) {
	row := q.db.QueryRowContext(ctx, existsByNameIgnoreCase, name)
	var exists bool
	err := row.Scan(&exists)
	return exists, err
}

const getTournament = `
SELECT id, name, created_at, updated_at FROM tournaments
WHERE id = $1
`

func (q *Queries) GetTournament(ctx context.Context, id int64) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, getTournament, id)
	var i Tournament
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getTournamentByNameIgnoreCase = `
SELECT id, name, created_at, updated_at FROM tournaments
WHERE lower(name) = lower($1)
`

func (q *Queries) GetTournamentByNameIgnoreCase(ctx context.Context, name string) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, getTournamentByNameIgnoreCase, name)
	var i Tournament
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listTournaments = `
SELECT id, name, created_at, updated_at FROM tournaments
ORDER BY id
`

func (q *Queries) ListTournaments(ctx context.Context) ([]Tournament, error) {
	rows, err := q.db.QueryContext(ctx, listTournaments)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Tournament
	for rows.Next() {
		var i Tournament
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const updateTournamentName = `
UPDATE tournaments
SET name = $2, updated_at = now()
WHERE id = $1
RETURNING id, name, created_at, updated_at
`

type UpdateTournamentNameParams struct {
	ID   int64
	Name string
}

func (q *Queries) UpdateTournamentName(ctx context.Context, arg UpdateTournamentNameParams) (Tournament, error) {
	row := q.db.QueryRowContext(ctx, updateTournamentName, arg.ID, arg.Name)
	var i Tournament
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}
