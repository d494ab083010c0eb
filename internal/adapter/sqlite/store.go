// Package sqlite reads and seeds the Lahman-style database behind the
// baseball case study, via database/sql over the pure-Go sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/ds4stats/case-studies/internal/baseball"
	"github.com/ds4stats/case-studies/internal/observability"
)

// ErrTeamNotFound is returned by TeamDetail for an unknown team id.
var ErrTeamNotFound = errors.New("team not found")

// Store wraps the SQLite database. Metrics may be nil.
type Store struct {
	db      *sql.DB
	metrics *observability.Metrics
}

// Open opens (or creates) the database at path and verifies the connection.
func Open(path string, metrics *observability.Metrics) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return &Store{db: db, metrics: metrics}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) observe(query string, start time.Time) {
	if s.metrics == nil {
		return
	}
	s.metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
}

const payrollQuery = `
SELECT teamID, yearID, lgID, SUM(salary)
FROM Salaries
WHERE yearID >= ?
GROUP BY teamID, yearID, lgID
ORDER BY yearID, teamID`

// TeamPayrolls sums player salaries into one row per team-season. The
// group-by runs in SQL; joining onto seasons happens in the domain layer.
func (s *Store) TeamPayrolls(ctx context.Context, sinceYear int) ([]baseball.TeamPayroll, error) {
	defer s.observe("team_payrolls", time.Now())

	rows, err := s.db.QueryContext(ctx, payrollQuery, sinceYear)
	if err != nil {
		return nil, fmt.Errorf("query team payrolls: %w", err)
	}
	defer rows.Close()

	var out []baseball.TeamPayroll
	for rows.Next() {
		var p baseball.TeamPayroll
		if err := rows.Scan(&p.TeamID, &p.Year, &p.League, &p.Dollars); err != nil {
			return nil, fmt.Errorf("scan team payroll: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team payrolls: %w", err)
	}
	return out, nil
}

const seasonQuery = `
SELECT teamID, yearID, lgID, name, W, L, DivWin, WCWin, LgWin, WSWin
FROM Teams
WHERE yearID >= ?
ORDER BY yearID, teamID`

// TeamSeasons returns one row per team-season with the four postseason
// flags decoded from their Y/N encoding. NULL flags read as false.
func (s *Store) TeamSeasons(ctx context.Context, sinceYear int) ([]baseball.TeamSeason, error) {
	defer s.observe("team_seasons", time.Now())

	rows, err := s.db.QueryContext(ctx, seasonQuery, sinceYear)
	if err != nil {
		return nil, fmt.Errorf("query team seasons: %w", err)
	}
	defer rows.Close()

	var out []baseball.TeamSeason
	for rows.Next() {
		season, err := scanSeason(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, season)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team seasons: %w", err)
	}
	return out, nil
}

const seriesQuery = `
SELECT yearID, round, teamIDwinner, teamIDloser, wins, losses
FROM SeriesPost
WHERE yearID >= ?
ORDER BY yearID, round`

// PostseasonSeries returns the series outcomes since the given year.
func (s *Store) PostseasonSeries(ctx context.Context, sinceYear int) ([]baseball.SeriesResult, error) {
	defer s.observe("postseason_series", time.Now())

	rows, err := s.db.QueryContext(ctx, seriesQuery, sinceYear)
	if err != nil {
		return nil, fmt.Errorf("query postseason series: %w", err)
	}
	defer rows.Close()

	var out []baseball.SeriesResult
	for rows.Next() {
		var sr baseball.SeriesResult
		if err := rows.Scan(&sr.Year, &sr.Round, &sr.Winner, &sr.Loser, &sr.Wins, &sr.Losses); err != nil {
			return nil, fmt.Errorf("scan postseason series: %w", err)
		}
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate postseason series: %w", err)
	}
	return out, nil
}

// TeamDetail is one team's seasons with nominal payrolls, serving the team
// API. Callers apply inflation adjustment themselves.
type TeamDetail struct {
	TeamID  string                   `json:"team_id"`
	Name    string                   `json:"name"`
	Seasons []baseball.PayrollSeason `json:"seasons"`
}

const detailQuery = `
SELECT t.teamID, t.yearID, t.lgID, t.name, t.W, t.L, t.DivWin, t.WCWin, t.LgWin, t.WSWin,
       COALESCE(p.total, 0)
FROM Teams t
LEFT JOIN (
    SELECT teamID, yearID, SUM(salary) AS total
    FROM Salaries
    GROUP BY teamID, yearID
) p ON p.teamID = t.teamID AND p.yearID = t.yearID
WHERE t.teamID = ?
ORDER BY t.yearID`

// TeamDetail returns every season line for one team with its payroll
// attached, or ErrTeamNotFound.
func (s *Store) TeamDetail(ctx context.Context, teamID string) (*TeamDetail, error) {
	defer s.observe("team_detail", time.Now())

	rows, err := s.db.QueryContext(ctx, detailQuery, teamID)
	if err != nil {
		return nil, fmt.Errorf("query team detail: %w", err)
	}
	defer rows.Close()

	detail := &TeamDetail{TeamID: teamID}
	for rows.Next() {
		var (
			season  baseball.TeamSeason
			payroll float64
		)
		var divWin, wcWin, lgWin, wsWin sql.NullString
		if err := rows.Scan(
			&season.TeamID, &season.Year, &season.League, &season.Name,
			&season.Wins, &season.Losses,
			&divWin, &wcWin, &lgWin, &wsWin,
			&payroll,
		); err != nil {
			return nil, fmt.Errorf("scan team detail: %w", err)
		}
		season.DivWin = divWin.String == "Y"
		season.WCWin = wcWin.String == "Y"
		season.LgWin = lgWin.String == "Y"
		season.WSWin = wsWin.String == "Y"

		row := baseball.PayrollSeason{
			TeamYear:     season.TeamYear,
			League:       season.League,
			Name:         season.Name,
			Payroll:      payroll,
			Wins:         season.Wins,
			Losses:       season.Losses,
			MadePlayoffs: season.MadePlayoffs(),
			WonSeries:    season.WSWin,
			Matched:      true,
		}
		if games := season.Wins + season.Losses; games > 0 {
			row.WinPct = float64(season.Wins) / float64(games)
		}
		detail.Name = season.Name
		detail.TeamID = season.TeamID
		detail.Seasons = append(detail.Seasons, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate team detail: %w", err)
	}
	if len(detail.Seasons) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
	}
	return detail, nil
}

func scanSeason(rows *sql.Rows) (baseball.TeamSeason, error) {
	var season baseball.TeamSeason
	var divWin, wcWin, lgWin, wsWin sql.NullString
	if err := rows.Scan(
		&season.TeamID, &season.Year, &season.League, &season.Name,
		&season.Wins, &season.Losses,
		&divWin, &wcWin, &lgWin, &wsWin,
	); err != nil {
		return baseball.TeamSeason{}, fmt.Errorf("scan team season: %w", err)
	}
	season.DivWin = divWin.String == "Y"
	season.WCWin = wcWin.String == "Y"
	season.LgWin = lgWin.String == "Y"
	season.WSWin = wsWin.String == "Y"
	return season, nil
}
