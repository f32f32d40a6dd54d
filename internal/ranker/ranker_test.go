package ranker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snic/snic/internal/comparisons"
	"github.com/snic/snic/internal/gber"
	"github.com/snic/snic/internal/matchups"
)

// PageRank accumulates score at the *target* of an edge, so a winner->loser
// edge makes the loser accrue rank from the winner, not the other way
// around. A lower PageRank score therefore means a better item, which is
// exactly what ascending-by-score is meant to express: the best item sorts
// first, the item that lost the most sorts last.
func TestRank_WinnerScoresLowerThanLoser(t *testing.T) {
	items := []uint64{1, 2}
	cmps := []comparisons.Comparison{{Winner: 1, Loser: 2}}

	result, err := Rank(items, cmps, 0.85, 1e-6)
	require.NoError(t, err)
	assert.Less(t, result.Scores[1], result.Scores[2])
}

func TestRank_AscendingOrderIsBestToWorst(t *testing.T) {
	items := []uint64{10, 20, 30}
	cmps := []comparisons.Comparison{
		{Winner: 10, Loser: 20},
		{Winner: 10, Loser: 30},
		{Winner: 20, Loser: 30},
	}

	result, err := Rank(items, cmps, 0.85, 1e-6)
	require.NoError(t, err)
	require.Len(t, result.AscendingByRank, 3)
	assert.Equal(t, uint64(10), result.AscendingByRank[0])
	assert.Equal(t, uint64(30), result.AscendingByRank[len(result.AscendingByRank)-1])
}

// TestRank_MatchupsThroughComparisonsRoundTrip drives the full C3/C5->C6->C7
// pipeline: a network of 4 items decomposed under base 4 produces a single
// intra-subnetwork matchup holding every item, already in natural (best to
// worst) order. Expanding it through the mould yields a complete tournament,
// so PageRank's ascending order must reproduce that same natural order.
func TestRank_MatchupsThroughComparisonsRoundTrip(t *testing.T) {
	d, err := gber.Decompose(4, 4)
	require.NoError(t, err)

	manager := matchups.NewManager(d)
	rankedMatchups := manager.All()
	require.Len(t, rankedMatchups, 1)
	require.Equal(t, []uint64{0, 1, 2, 3}, rankedMatchups[0])

	cmps := comparisons.ExpandRankedMatchups(rankedMatchups)
	result, err := Rank(rankedMatchups[0], cmps, 0.85, 1e-6)
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 2, 3}, result.AscendingByRank)
}

func TestRank_UnknownItemInComparisonFails(t *testing.T) {
	items := []uint64{1, 2}
	cmps := []comparisons.Comparison{{Winner: 1, Loser: 99}}

	_, err := Rank(items, cmps, 0.85, 1e-6)
	assert.Error(t, err)
}

func TestRank_EmptyItemsReturnsEmptyResult(t *testing.T) {
	result, err := Rank(nil, nil, 0.85, 1e-6)
	require.NoError(t, err)
	assert.Empty(t, result.Scores)
}

func TestRank_InvalidDampingPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = Rank([]uint64{1, 2}, nil, 1.5, 1e-6)
	})
}
