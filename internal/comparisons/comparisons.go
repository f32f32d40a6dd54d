// Package comparisons expands a ranked matchup into the pairwise directed
// comparisons it implies (winner beat loser for every pair, by rank order).
package comparisons

// Pair is a 0-based (i, j) index pair with i < j into a matchup slice.
type Pair struct {
	I, J int
}

// GenerateExpansionMould returns every (i, j) pair with 0 <= i < j < size,
// in lexicographic order. The mould is independent of any particular
// matchup: it only depends on the matchup size, so it can be computed once
// and reused across every matchup of that size.
func GenerateExpansionMould(size int) []Pair {
	var mould []Pair
	for i := 0; i < size-1; i++ {
		for j := i + 1; j < size; j++ {
			mould = append(mould, Pair{I: i, J: j})
		}
	}
	return mould
}

// Comparison is a directed pairwise result: Winner beat Loser.
type Comparison struct {
	Winner uint64
	Loser  uint64
}

// ConvertToComparisons maps a ranked matchup result (best to worst) through
// an expansion mould, producing one directed comparison per mould pair.
// matchupResult[i] is assumed to rank strictly ahead of matchupResult[j]
// whenever i < j, so every pair in the mould becomes a winner-beats-loser
// comparison in that order.
func ConvertToComparisons(matchupResult []uint64, mould []Pair) []Comparison {
	comparisons := make([]Comparison, len(mould))
	for k, pair := range mould {
		comparisons[k] = Comparison{
			Winner: matchupResult[pair.I],
			Loser:  matchupResult[pair.J],
		}
	}
	return comparisons
}

// ExpandRankedMatchups converts a stream of ranked matchups (each already
// ordered best to worst) into the full set of directed comparisons they
// imply, building one mould per distinct matchup size and reusing it across
// every matchup of that size.
func ExpandRankedMatchups(rankedMatchups [][]uint64) []Comparison {
	moulds := make(map[int][]Pair)
	var all []Comparison
	for _, matchup := range rankedMatchups {
		mould, ok := moulds[len(matchup)]
		if !ok {
			mould = GenerateExpansionMould(len(matchup))
			moulds[len(matchup)] = mould
		}
		all = append(all, ConvertToComparisons(matchup, mould)...)
	}
	return all
}
