package baseball

// TeamYear is the composite key joining payrolls to seasons.
type TeamYear struct {
	TeamID string `json:"team_id"`
	Year   int    `json:"year"`
}

// TeamSeason is one team's season line from the Teams table.
type TeamSeason struct {
	TeamYear
	League string `json:"league"`
	Name   string `json:"name"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	DivWin bool   `json:"div_win"`
	WCWin  bool   `json:"wc_win"`
	LgWin  bool   `json:"lg_win"`
	WSWin  bool   `json:"ws_win"`
}

// MadePlayoffs reports whether any postseason flag is set.
func (s TeamSeason) MadePlayoffs() bool {
	return s.DivWin || s.WCWin || s.LgWin || s.WSWin
}

// TeamPayroll is the summed player salary for one team-season.
type TeamPayroll struct {
	TeamYear
	League  string  `json:"league"`
	Dollars float64 `json:"dollars"`
}

// SeriesResult is one postseason series outcome from the SeriesPost table.
type SeriesResult struct {
	Year   int    `json:"year"`
	Round  string `json:"round"` // "WS" for the World Series
	Winner string `json:"winner"`
	Loser  string `json:"loser"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
}

// PayrollSeason is the left join of a team-season payroll onto its season
// line. Matched is false when no season line existed for the payroll key;
// the season fields then stay zero.
type PayrollSeason struct {
	TeamYear
	League       string  `json:"league"`
	Name         string  `json:"name,omitempty"`
	Payroll      float64 `json:"payroll"`
	AdjPayroll   float64 `json:"adj_payroll"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinPct       float64 `json:"win_pct"`
	MadePlayoffs bool    `json:"made_playoffs"`
	WonSeries    bool    `json:"won_series"`
	Matched      bool    `json:"matched"`
}

// PayrollMeasure is the long (tidy) form of one payroll figure.
type PayrollMeasure struct {
	TeamID  string  `json:"team_id"`
	Year    int     `json:"year"`
	Measure string  `json:"measure"` // MeasureNominal or MeasureAdjusted
	Dollars float64 `json:"dollars"`
}
