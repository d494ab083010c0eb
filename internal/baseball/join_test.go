package baseball

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payroll(team string, year int, dollars float64) TeamPayroll {
	return TeamPayroll{TeamYear: TeamYear{TeamID: team, Year: year}, League: "AL", Dollars: dollars}
}

func season(team string, year, wins, losses int) TeamSeason {
	return TeamSeason{
		TeamYear: TeamYear{TeamID: team, Year: year},
		League:   "AL",
		Name:     team + " club",
		Wins:     wins,
		Losses:   losses,
	}
}

func TestJoin_MatchesOnTeamAndYear(t *testing.T) {
	payrolls := []TeamPayroll{
		payroll("NYA", 2010, 206_000_000),
		payroll("BOS", 2010, 162_000_000),
	}
	seasons := []TeamSeason{season("NYA", 2010, 95, 67)}

	rows := Join(payrolls, seasons)
	require.Len(t, rows, 2)

	bos, nya := rows[0], rows[1]

	assert.True(t, nya.Matched)
	assert.Equal(t, 95, nya.Wins)
	assert.Equal(t, 67, nya.Losses)
	assert.InDelta(t, 95.0/162.0, nya.WinPct, 1e-12)
	assert.Equal(t, "NYA club", nya.Name)

	assert.False(t, bos.Matched, "payroll without a season line keeps Matched=false")
	assert.Zero(t, bos.Wins)
	assert.Zero(t, bos.WinPct)
	assert.Empty(t, bos.Name)
	assert.Equal(t, 162_000_000.0, bos.Payroll)
}

func TestJoin_CompositeKeyKeepsYearsApart(t *testing.T) {
	payrolls := []TeamPayroll{
		payroll("NYA", 2010, 206_000_000),
		payroll("NYA", 2011, 202_000_000),
	}
	seasons := []TeamSeason{
		season("NYA", 2010, 95, 67),
		season("NYA", 2011, 97, 65),
	}

	rows := Join(payrolls, seasons)
	require.Len(t, rows, 2)
	assert.Equal(t, 95, rows[0].Wins)
	assert.Equal(t, 97, rows[1].Wins)
}

func TestJoin_OutputOrdered(t *testing.T) {
	payrolls := []TeamPayroll{
		payroll("TEX", 2011, 92_000_000),
		payroll("BOS", 2010, 162_000_000),
		payroll("NYA", 2010, 206_000_000),
	}

	rows := Join(payrolls, nil)

	got := make([]TeamYear, len(rows))
	for i, row := range rows {
		got[i] = row.TeamYear
	}
	want := []TeamYear{
		{TeamID: "BOS", Year: 2010},
		{TeamID: "NYA", Year: 2010},
		{TeamID: "TEX", Year: 2011},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("join order mismatch (-want +got):\n%s", diff)
	}
}

func TestChampions_OnlyWorldSeriesRound(t *testing.T) {
	series := []SeriesResult{
		{Year: 2010, Round: "ALCS", Winner: "TEX", Loser: "NYA"},
		{Year: 2010, Round: "WS", Winner: "SFN", Loser: "TEX"},
		{Year: 2011, Round: "WS", Winner: "SLN", Loser: "TEX"},
	}

	champs := Champions(series)
	assert.Equal(t, map[int]string{2010: "SFN", 2011: "SLN"}, champs)
}

func TestAssemble(t *testing.T) {
	payrolls := []TeamPayroll{
		payroll("NYA", 2010, 100_000_000),
		payroll("SFN", 2010, 90_000_000),
	}
	seasons := []TeamSeason{
		season("NYA", 2010, 95, 67),
		season("SFN", 2010, 92, 70),
	}
	series := []SeriesResult{{Year: 2010, Round: "WS", Winner: "SFN", Loser: "TEX"}}
	infl := NewInflation(map[int]float64{2010: 1.10})

	rows := Assemble(payrolls, seasons, series, infl)
	require.Len(t, rows, 2)

	assert.InDelta(t, 110_000_000, rows[0].AdjPayroll, 1e-6)
	assert.False(t, rows[0].WonSeries)
	assert.InDelta(t, 99_000_000, rows[1].AdjPayroll, 1e-6)
	assert.True(t, rows[1].WonSeries)
}

func TestPivotMeasures(t *testing.T) {
	rows := []PayrollSeason{
		{TeamYear: TeamYear{TeamID: "NYA", Year: 2010}, Payroll: 100, AdjPayroll: 110},
		{TeamYear: TeamYear{TeamID: "BOS", Year: 2010}, Payroll: 80, AdjPayroll: 88},
	}

	long := PivotMeasures(rows)

	want := []PayrollMeasure{
		{TeamID: "NYA", Year: 2010, Measure: MeasureNominal, Dollars: 100},
		{TeamID: "NYA", Year: 2010, Measure: MeasureAdjusted, Dollars: 110},
		{TeamID: "BOS", Year: 2010, Measure: MeasureNominal, Dollars: 80},
		{TeamID: "BOS", Year: 2010, Measure: MeasureAdjusted, Dollars: 88},
	}
	if diff := cmp.Diff(want, long); diff != "" {
		t.Errorf("pivot mismatch (-want +got):\n%s", diff)
	}
}
