package sqlite

import (
	"context"
	"fmt"
)

// SalaryRow is one player-season salary line for seeding.
type SalaryRow struct {
	Year     int
	TeamID   string
	League   string
	PlayerID string
	Salary   float64
}

// SeedTeam is one team-season line for seeding.
type SeedTeam struct {
	Year   int
	League string
	TeamID string
	Name   string
	Wins   int
	Losses int
	DivWin bool
	WCWin  bool
	LgWin  bool
	WSWin  bool
}

// SeedSeries is one postseason series line for seeding.
type SeedSeries struct {
	Year   int
	Round  string
	Winner string
	Loser  string
	Wins   int
	Losses int
}

// SeedData is the full content of a sample database.
type SeedData struct {
	Salaries []SalaryRow
	Teams    []SeedTeam
	Series   []SeedSeries
}

var seedDDL = []string{
	`DROP TABLE IF EXISTS Salaries`,
	`DROP TABLE IF EXISTS Teams`,
	`DROP TABLE IF EXISTS SeriesPost`,
	`CREATE TABLE Salaries (
		yearID   INTEGER NOT NULL,
		teamID   TEXT    NOT NULL,
		lgID     TEXT    NOT NULL,
		playerID TEXT    NOT NULL,
		salary   REAL    NOT NULL
	)`,
	`CREATE TABLE Teams (
		yearID INTEGER NOT NULL,
		lgID   TEXT    NOT NULL,
		teamID TEXT    NOT NULL,
		name   TEXT    NOT NULL,
		W      INTEGER NOT NULL,
		L      INTEGER NOT NULL,
		DivWin TEXT,
		WCWin  TEXT,
		LgWin  TEXT,
		WSWin  TEXT
	)`,
	`CREATE TABLE SeriesPost (
		yearID       INTEGER NOT NULL,
		round        TEXT    NOT NULL,
		teamIDwinner TEXT    NOT NULL,
		teamIDloser  TEXT    NOT NULL,
		wins         INTEGER NOT NULL,
		losses       INTEGER NOT NULL
	)`,
}

var seedIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_salaries_team_year ON Salaries(teamID, yearID)`,
	`CREATE INDEX IF NOT EXISTS idx_teams_team_year ON Teams(teamID, yearID)`,
	`CREATE INDEX IF NOT EXISTS idx_seriespost_year ON SeriesPost(yearID)`,
}

// Seed replaces the three case-study tables with the given content.
// Inserts run inside one transaction so a failed seed leaves nothing behind.
func (s *Store) Seed(ctx context.Context, data SeedData) error {
	for _, ddl := range seedDDL {
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("seed ddl: %w", err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	salaryStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO Salaries (yearID, teamID, lgID, playerID, salary) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed prepare salaries: %w", err)
	}
	defer salaryStmt.Close()
	for _, row := range data.Salaries {
		if _, err := salaryStmt.ExecContext(ctx, row.Year, row.TeamID, row.League, row.PlayerID, row.Salary); err != nil {
			return fmt.Errorf("seed salary %s/%d: %w", row.TeamID, row.Year, err)
		}
	}

	teamStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO Teams (yearID, lgID, teamID, name, W, L, DivWin, WCWin, LgWin, WSWin)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed prepare teams: %w", err)
	}
	defer teamStmt.Close()
	for _, row := range data.Teams {
		if _, err := teamStmt.ExecContext(ctx,
			row.Year, row.League, row.TeamID, row.Name, row.Wins, row.Losses,
			yn(row.DivWin), yn(row.WCWin), yn(row.LgWin), yn(row.WSWin),
		); err != nil {
			return fmt.Errorf("seed team %s/%d: %w", row.TeamID, row.Year, err)
		}
	}

	seriesStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO SeriesPost (yearID, round, teamIDwinner, teamIDloser, wins, losses)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("seed prepare series: %w", err)
	}
	defer seriesStmt.Close()
	for _, row := range data.Series {
		if _, err := seriesStmt.ExecContext(ctx,
			row.Year, row.Round, row.Winner, row.Loser, row.Wins, row.Losses,
		); err != nil {
			return fmt.Errorf("seed series %s/%d: %w", row.Round, row.Year, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	for _, idx := range seedIndexes {
		if _, err := s.db.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("seed index: %w", err)
		}
	}
	return nil
}

func yn(b bool) string {
	if b {
		return "Y"
	}
	return "N"
}
