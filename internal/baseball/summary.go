package baseball

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ChampionRank is one year's World Series winner with its payroll standing.
// PayrollRank 1 means the biggest adjusted payroll that year; 0 means the
// champion had no payroll row to rank.
type ChampionRank struct {
	Year        int     `json:"year"`
	TeamID      string  `json:"team_id"`
	AdjPayroll  float64 `json:"adj_payroll"`
	PayrollRank int     `json:"payroll_rank"`
	Teams       int     `json:"teams"`
}

// Summary aggregates the joined payroll-season table.
type Summary struct {
	FirstYear int `json:"first_year"`
	LastYear  int `json:"last_year"`
	Teams     int `json:"teams"`
	Rows      int `json:"rows"`
	Unmatched int `json:"unmatched"`

	TotalAdjPayroll float64 `json:"total_adj_payroll"`
	MeanAdjPayroll  float64 `json:"mean_adj_payroll"`
	PlayoffSeasons  int     `json:"playoff_seasons"`

	Champions []ChampionRank `json:"champions"`
	Fit       Fit            `json:"fit"`
}

// Summarize aggregates rows and ranks each champion's payroll against its
// year. Years in champs outside the rows' span are ignored; a champion
// without a payroll row gets PayrollRank 0.
func Summarize(rows []PayrollSeason, champs map[int]string) Summary {
	s := Summary{}
	if len(rows) == 0 {
		return s
	}

	teams := make(map[string]bool)
	adjByYear := make(map[int][]float64)
	adjAll := make([]float64, 0, len(rows))

	s.FirstYear = rows[0].Year
	s.LastYear = rows[0].Year
	for _, row := range rows {
		s.Rows++
		if !row.Matched {
			s.Unmatched++
		}
		if row.Year < s.FirstYear {
			s.FirstYear = row.Year
		}
		if row.Year > s.LastYear {
			s.LastYear = row.Year
		}
		teams[row.TeamID] = true
		adjByYear[row.Year] = append(adjByYear[row.Year], row.AdjPayroll)
		adjAll = append(adjAll, row.AdjPayroll)
		s.TotalAdjPayroll += row.AdjPayroll
		if row.MadePlayoffs {
			s.PlayoffSeasons++
		}
	}
	s.Teams = len(teams)
	s.MeanAdjPayroll = stat.Mean(adjAll, nil)

	years := make([]int, 0, len(champs))
	for year := range champs {
		if year >= s.FirstYear && year <= s.LastYear {
			years = append(years, year)
		}
	}
	sort.Ints(years)

	for _, year := range years {
		rank := ChampionRank{Year: year, TeamID: champs[year], Teams: len(adjByYear[year])}
		for _, row := range rows {
			if row.Year == year && row.TeamID == rank.TeamID {
				rank.AdjPayroll = row.AdjPayroll
				rank.PayrollRank = 1
				for _, adj := range adjByYear[year] {
					if adj > row.AdjPayroll {
						rank.PayrollRank++
					}
				}
				break
			}
		}
		s.Champions = append(s.Champions, rank)
	}

	if fit, err := FitWinsVsPayroll(rows); err == nil {
		s.Fit = fit
	}

	return s
}
