package baseball

import "sort"

// Measure labels for the long payroll form.
const (
	MeasureNominal  = "nominal"
	MeasureAdjusted = "adjusted"
)

// Join left-joins team payrolls onto season lines by team and year.
// Every payroll row appears exactly once in the output, ordered by year then
// team. Payrolls without a season line come back with Matched=false and zero
// season fields. AdjPayroll and WonSeries are left for Assemble to fill.
func Join(payrolls []TeamPayroll, seasons []TeamSeason) []PayrollSeason {
	byKey := make(map[TeamYear]TeamSeason, len(seasons))
	for _, s := range seasons {
		byKey[s.TeamYear] = s
	}

	out := make([]PayrollSeason, 0, len(payrolls))
	for _, p := range payrolls {
		row := PayrollSeason{
			TeamYear: p.TeamYear,
			League:   p.League,
			Payroll:  p.Dollars,
		}
		if s, ok := byKey[p.TeamYear]; ok {
			row.Matched = true
			row.Name = s.Name
			row.Wins = s.Wins
			row.Losses = s.Losses
			row.MadePlayoffs = s.MadePlayoffs()
			if s.League != "" {
				row.League = s.League
			}
			if games := s.Wins + s.Losses; games > 0 {
				row.WinPct = float64(s.Wins) / float64(games)
			}
		}
		out = append(out, row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}

// Champions maps each year to the World Series round winner.
func Champions(series []SeriesResult) map[int]string {
	champs := make(map[int]string)
	for _, s := range series {
		if s.Round == "WS" {
			champs[s.Year] = s.Winner
		}
	}
	return champs
}

// Assemble produces the full joined table: payrolls left-joined onto
// seasons, payrolls adjusted to constant dollars, and each year's World
// Series winner marked.
func Assemble(payrolls []TeamPayroll, seasons []TeamSeason, series []SeriesResult, infl *Inflation) []PayrollSeason {
	rows := Join(payrolls, seasons)
	champs := Champions(series)
	for i := range rows {
		rows[i].AdjPayroll = infl.Adjust(rows[i].Year, rows[i].Payroll)
		rows[i].WonSeries = champs[rows[i].Year] == rows[i].TeamID
	}
	return rows
}

// PivotMeasures reshapes the joined table from wide to long: one row per
// team-season per measure, nominal before adjusted.
func PivotMeasures(rows []PayrollSeason) []PayrollMeasure {
	out := make([]PayrollMeasure, 0, 2*len(rows))
	for _, row := range rows {
		out = append(out,
			PayrollMeasure{TeamID: row.TeamID, Year: row.Year, Measure: MeasureNominal, Dollars: row.Payroll},
			PayrollMeasure{TeamID: row.TeamID, Year: row.Year, Measure: MeasureAdjusted, Dollars: row.AdjPayroll},
		)
	}
	return out
}
