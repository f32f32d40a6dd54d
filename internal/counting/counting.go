// Package counting provides closed-form sizing for matchups and comparisons,
// avoiding the need to run the iterators just to learn how large a stream
// will be.
package counting

import "github.com/snic/snic/internal/gber"

// MatchupsNumberFor returns the number of matchups a subnetwork of the given
// size produces under the given base, without iterating them.
func MatchupsNumberFor(subnetworkSize, base uint64) uint64 {
	initiatorItems := subnetworkSize / base
	matchupsPerItem := uint64(gber.IntegerLog(subnetworkSize, base))
	return initiatorItems * matchupsPerItem
}

// ComparisonsNumberFor returns the number of pairwise comparisons produced
// by matchupsNumber matchups of the given base (size), i.e.
// matchupsNumber * C(base, 2).
func ComparisonsNumberFor(matchupsNumber, base uint64) uint64 {
	perMatchup := base * (base - 1) / 2
	return matchupsNumber * perMatchup
}
