package baseball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryRow(team string, year int, adj float64, wins int, playoffs bool) PayrollSeason {
	return PayrollSeason{
		TeamYear:     TeamYear{TeamID: team, Year: year},
		AdjPayroll:   adj,
		Wins:         wins,
		Losses:       162 - wins,
		Matched:      true,
		MadePlayoffs: playoffs,
	}
}

func TestSummarize_Totals(t *testing.T) {
	rows := []PayrollSeason{
		summaryRow("NYA", 2010, 120e6, 95, true),
		summaryRow("BOS", 2010, 100e6, 89, false),
		summaryRow("NYA", 2011, 130e6, 97, true),
		{TeamYear: TeamYear{TeamID: "MIA", Year: 2011}, AdjPayroll: 50e6},
	}

	s := Summarize(rows, nil)

	assert.Equal(t, 2010, s.FirstYear)
	assert.Equal(t, 2011, s.LastYear)
	assert.Equal(t, 3, s.Teams)
	assert.Equal(t, 4, s.Rows)
	assert.Equal(t, 1, s.Unmatched)
	assert.Equal(t, 2, s.PlayoffSeasons)
	assert.InDelta(t, 400e6, s.TotalAdjPayroll, 1e-3)
	assert.InDelta(t, 100e6, s.MeanAdjPayroll, 1e-3)
}

func TestSummarize_ChampionRank(t *testing.T) {
	rows := []PayrollSeason{
		summaryRow("NYA", 2010, 120e6, 95, true),
		summaryRow("SFN", 2010, 100e6, 92, true),
		summaryRow("SDN", 2010, 80e6, 90, false),
	}
	champs := map[int]string{2010: "SFN"}

	s := Summarize(rows, champs)

	require.Len(t, s.Champions, 1)
	champ := s.Champions[0]
	assert.Equal(t, 2010, champ.Year)
	assert.Equal(t, "SFN", champ.TeamID)
	assert.Equal(t, 2, champ.PayrollRank, "one team outspent the champion")
	assert.Equal(t, 3, champ.Teams)
	assert.InDelta(t, 100e6, champ.AdjPayroll, 1e-3)
}

func TestSummarize_ChampionWithoutPayrollRow(t *testing.T) {
	rows := []PayrollSeason{
		summaryRow("NYA", 2010, 120e6, 95, true),
		summaryRow("BOS", 2010, 100e6, 89, false),
	}
	champs := map[int]string{2010: "SFN"}

	s := Summarize(rows, champs)

	require.Len(t, s.Champions, 1)
	assert.Equal(t, 0, s.Champions[0].PayrollRank)
	assert.Zero(t, s.Champions[0].AdjPayroll)
	assert.Equal(t, 2, s.Champions[0].Teams)
}

func TestSummarize_ChampionOutsideSpanIgnored(t *testing.T) {
	rows := []PayrollSeason{summaryRow("NYA", 2010, 120e6, 95, true)}
	champs := map[int]string{1954: "NY1", 2010: "NYA"}

	s := Summarize(rows, champs)

	require.Len(t, s.Champions, 1)
	assert.Equal(t, 2010, s.Champions[0].Year)
	assert.Equal(t, 1, s.Champions[0].PayrollRank)
}

func TestSummarize_IncludesFit(t *testing.T) {
	rows := []PayrollSeason{
		summaryRow("A", 2010, 50e6, 70, false),
		summaryRow("B", 2010, 100e6, 80, false),
		summaryRow("C", 2010, 150e6, 90, true),
	}

	s := Summarize(rows, nil)

	assert.Equal(t, 3, s.Fit.N)
	assert.InDelta(t, 0.2, s.Fit.Beta, 1e-9)
	assert.InDelta(t, 1.0, s.Fit.R2, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, map[int]string{2010: "SFN"})

	assert.Zero(t, s.Rows)
	assert.Empty(t, s.Champions)
	assert.Zero(t, s.Fit.N)
}
