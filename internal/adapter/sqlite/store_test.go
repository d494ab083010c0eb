package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds4stats/case-studies/internal/baseball"
	"github.com/ds4stats/case-studies/internal/observability"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.sqlite"), observability.NewMetricsForTesting())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleSeed() SeedData {
	return SeedData{
		Salaries: []SalaryRow{
			{Year: 2010, TeamID: "NYA", League: "AL", PlayerID: "jeterde01", Salary: 22_600_000},
			{Year: 2010, TeamID: "NYA", League: "AL", PlayerID: "rodrial01", Salary: 33_000_000},
			{Year: 2010, TeamID: "SFN", League: "NL", PlayerID: "lincoti01", Salary: 9_000_000},
			{Year: 2011, TeamID: "NYA", League: "AL", PlayerID: "jeterde01", Salary: 14_729_365},
		},
		Teams: []SeedTeam{
			{Year: 2010, League: "AL", TeamID: "NYA", Name: "New York Yankees", Wins: 95, Losses: 67, WCWin: true},
			{Year: 2010, League: "NL", TeamID: "SFN", Name: "San Francisco Giants", Wins: 92, Losses: 70, DivWin: true, LgWin: true, WSWin: true},
			{Year: 2011, League: "AL", TeamID: "NYA", Name: "New York Yankees", Wins: 97, Losses: 65, DivWin: true},
		},
		Series: []SeedSeries{
			{Year: 2010, Round: "ALCS", Winner: "TEX", Loser: "NYA", Wins: 4, Losses: 2},
			{Year: 2010, Round: "WS", Winner: "SFN", Loser: "TEX", Wins: 4, Losses: 1},
		},
	}
}

func TestTeamPayrolls_GroupsAndSums(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	payrolls, err := store.TeamPayrolls(ctx, 0)
	require.NoError(t, err)
	require.Len(t, payrolls, 3)

	assert.Equal(t, baseball.TeamPayroll{
		TeamYear: baseball.TeamYear{TeamID: "NYA", Year: 2010},
		League:   "AL",
		Dollars:  55_600_000,
	}, payrolls[0])
	assert.Equal(t, "SFN", payrolls[1].TeamID)
	assert.Equal(t, 9_000_000.0, payrolls[1].Dollars)
	assert.Equal(t, 2011, payrolls[2].Year)
}

func TestTeamPayrolls_SinceYear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	payrolls, err := store.TeamPayrolls(ctx, 2011)
	require.NoError(t, err)
	require.Len(t, payrolls, 1)
	assert.Equal(t, 2011, payrolls[0].Year)
	assert.InDelta(t, 14_729_365, payrolls[0].Dollars, 1e-6)
}

func TestTeamSeasons_DecodesFlags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	seasons, err := store.TeamSeasons(ctx, 0)
	require.NoError(t, err)
	require.Len(t, seasons, 3)

	nya2010 := seasons[0]
	assert.Equal(t, "NYA", nya2010.TeamID)
	assert.Equal(t, 95, nya2010.Wins)
	assert.True(t, nya2010.WCWin)
	assert.False(t, nya2010.DivWin)
	assert.True(t, nya2010.MadePlayoffs())

	sfn := seasons[1]
	assert.True(t, sfn.WSWin)
	assert.True(t, sfn.LgWin)
	assert.Equal(t, "San Francisco Giants", sfn.Name)
}

func TestPostseasonSeries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	series, err := store.PostseasonSeries(ctx, 0)
	require.NoError(t, err)
	require.Len(t, series, 2)

	assert.Equal(t, "ALCS", series[0].Round)
	assert.Equal(t, baseball.SeriesResult{
		Year: 2010, Round: "WS", Winner: "SFN", Loser: "TEX", Wins: 4, Losses: 1,
	}, series[1])

	champs := baseball.Champions(series)
	assert.Equal(t, map[int]string{2010: "SFN"}, champs)
}

func TestTeamDetail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	detail, err := store.TeamDetail(ctx, "NYA")
	require.NoError(t, err)

	assert.Equal(t, "NYA", detail.TeamID)
	assert.Equal(t, "New York Yankees", detail.Name)
	require.Len(t, detail.Seasons, 2)

	first := detail.Seasons[0]
	assert.Equal(t, 2010, first.Year)
	assert.Equal(t, 55_600_000.0, first.Payroll)
	assert.Equal(t, 95, first.Wins)
	assert.InDelta(t, 95.0/162.0, first.WinPct, 1e-12)
	assert.True(t, first.MadePlayoffs)
	assert.True(t, first.Matched)
}

func TestTeamDetail_NotFound(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	_, err := store.TeamDetail(ctx, "XXX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTeamNotFound)
	assert.Contains(t, err.Error(), "XXX")
}

func TestSeed_ReplacesExistingTables(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx, sampleSeed()))
	require.NoError(t, store.Seed(ctx, sampleSeed()))

	payrolls, err := store.TeamPayrolls(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, payrolls, 3, "reseeding must replace, not append")
}
