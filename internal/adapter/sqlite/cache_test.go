package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds4stats/case-studies/internal/observability"
)

// reseedWithWins rewrites the database so NYA's 2010 win count changes,
// which lets the tests tell a cached answer from a fresh query.
func reseedWithWins(t *testing.T, store *Store, wins int) {
	t.Helper()
	data := sampleSeed()
	for i := range data.Teams {
		if data.Teams[i].TeamID == "NYA" && data.Teams[i].Year == 2010 {
			data.Teams[i].Wins = wins
		}
	}
	require.NoError(t, store.Seed(context.Background(), data))
}

func TestCachedStore_ServesFromCache(t *testing.T) {
	store := newTestStore(t)
	cached := NewCachedStore(store, 8, observability.NewMetricsForTesting())
	ctx := context.Background()

	reseedWithWins(t, store, 95)
	first, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	assert.Equal(t, 95, first.Seasons[0].Wins)

	reseedWithWins(t, store, 90)
	again, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	assert.Equal(t, 95, again.Seasons[0].Wins, "second lookup must come from the cache")
}

func TestCachedStore_KeysAreCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	cached := NewCachedStore(store, 8, observability.NewMetricsForTesting())
	ctx := context.Background()

	reseedWithWins(t, store, 95)
	_, err := cached.TeamDetail(ctx, "nya")
	require.NoError(t, err)

	reseedWithWins(t, store, 90)
	detail, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	assert.Equal(t, 95, detail.Seasons[0].Wins)
}

func TestCachedStore_EvictsLeastRecentlyUsed(t *testing.T) {
	store := newTestStore(t)
	cached := NewCachedStore(store, 1, observability.NewMetricsForTesting())
	ctx := context.Background()

	reseedWithWins(t, store, 95)
	_, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	_, err = cached.TeamDetail(ctx, "SFN")
	require.NoError(t, err)

	reseedWithWins(t, store, 90)
	detail, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	assert.Equal(t, 90, detail.Seasons[0].Wins, "NYA was evicted and must be re-queried")
}

func TestCachedStore_DoesNotCacheErrors(t *testing.T) {
	store := newTestStore(t)
	cached := NewCachedStore(store, 8, observability.NewMetricsForTesting())
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx, SeedData{}))
	_, err := cached.TeamDetail(ctx, "NYA")
	require.ErrorIs(t, err, ErrTeamNotFound)

	reseedWithWins(t, store, 95)
	detail, err := cached.TeamDetail(ctx, "NYA")
	require.NoError(t, err)
	assert.Equal(t, 95, detail.Seasons[0].Wins)
}
