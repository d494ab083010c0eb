package baseball

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fitRow(team string, year int, adjPayroll float64, wins int) PayrollSeason {
	return PayrollSeason{
		TeamYear:   TeamYear{TeamID: team, Year: year},
		AdjPayroll: adjPayroll,
		Wins:       wins,
		Matched:    true,
	}
}

func TestFitWinsVsPayroll_RecoversPerfectLine(t *testing.T) {
	// wins = 60 + 0.2 * payroll($M), exactly.
	rows := []PayrollSeason{
		fitRow("A", 2010, 50e6, 70),
		fitRow("B", 2010, 100e6, 80),
		fitRow("C", 2010, 150e6, 90),
		fitRow("D", 2010, 200e6, 100),
	}

	fit, err := FitWinsVsPayroll(rows)
	require.NoError(t, err)

	assert.InDelta(t, 60.0, fit.Alpha, 1e-9)
	assert.InDelta(t, 0.2, fit.Beta, 1e-9)
	assert.InDelta(t, 1.0, fit.R2, 1e-9)
	assert.Equal(t, 4, fit.N)
}

func TestFitWinsVsPayroll_SkipsUnmatchedRows(t *testing.T) {
	rows := []PayrollSeason{
		fitRow("A", 2010, 50e6, 70),
		fitRow("B", 2010, 150e6, 90),
		{TeamYear: TeamYear{TeamID: "C", Year: 2010}, AdjPayroll: 999e6, Matched: false},
	}

	fit, err := FitWinsVsPayroll(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, fit.N)
	assert.InDelta(t, 0.2, fit.Beta, 1e-9)
}

func TestFitWinsVsPayroll_TooFewRows(t *testing.T) {
	_, err := FitWinsVsPayroll([]PayrollSeason{fitRow("A", 2010, 50e6, 70)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")
}
