package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/tourney/go/internal/dbconfig"
)

// Team mirrors the team directory's JSON structure
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func loadTeams(path string) ([]Team, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read JSON: %w", err)
	}
	var teams []Team
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	for i, t := range teams {
		if t.ID == 0 || t.Name == "" {
			return nil, fmt.Errorf("team at index %d needs an id and a name", i)
		}
	}
	return teams, nil
}

func main() {
	path := flag.String("file", "go/internal/assets/teams.json", "JSON team snapshot")
	flag.Parse()

	// 1) Load the JSON snapshot
	teams, err := loadTeams(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// 2) Connect using shared dbconfig
	cfg, err := dbconfig.NewConfigFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 3) Insert and count
	var (
		total    = len(teams)
		inserted int
		skipped  int
		errs     int
	)

	for _, t := range teams {
		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO teams (id, name)
            VALUES ($1, $2)
            ON CONFLICT (id) DO NOTHING
        `, t.ID, t.Name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting team %d: %v\n", t.ID, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	fmt.Printf("Teams: %d total, %d inserted, %d skipped, %d errors\n", total, inserted, skipped, errs)
	if errs > 0 {
		os.Exit(1)
	}
}
