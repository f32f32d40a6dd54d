// Package ranker adapts the comparisons derived from matchups into item
// scores via PageRank over the directed "winner beat loser" graph, using
// gonum's network analysis package rather than a hand-rolled power
// iteration.
package ranker

import (
	"sort"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/snic/snic/internal/comparisons"
	snicerrors "github.com/snic/snic/pkg/errors"
	"github.com/snic/snic/pkg/collections"
)

// Result holds per-item PageRank scores and an ascending-by-score ordering
// of the item IDs.
type Result struct {
	Scores          map[uint64]float64
	AscendingByRank []uint64
}

// Rank builds a directed graph from comparisons (an edge from winner to
// loser) and runs PageRank over it with the given damping factor and
// convergence tolerance.
//
// Item IDs are network-global indices, so they're used directly as gonum
// node IDs rather than remapped through a dense-index table. A Bitset
// sized to the largest item ID tracks which IDs have already been added
// as nodes, since the same item can legitimately appear in many matchups.
func Rank(allItems []uint64, cmps []comparisons.Comparison, damping, tolerance float64) (Result, error) {
	snicerrors.Precondition(damping > 0 && damping < 1, "damping must be in (0, 1), got %f", damping)
	snicerrors.Precondition(tolerance > 0, "tolerance must be > 0, got %f", tolerance)

	if len(allItems) == 0 {
		return Result{Scores: map[uint64]float64{}}, nil
	}

	var maxID uint64
	for _, id := range allItems {
		if id > maxID {
			maxID = id
		}
	}
	known := collections.NewBitset(int(maxID) + 1)

	g := simple.NewDirectedGraph()
	for _, id := range allItems {
		if known.Test(int(id)) {
			continue
		}
		known.Set(int(id))
		g.AddNode(simple.Node(id))
	}

	for _, c := range cmps {
		if !known.Test(int(c.Winner)) {
			return Result{}, snicerrors.Wrap(snicerrors.CodeExternalRankerFailure, "comparison references an unknown winner item", nil)
		}
		if !known.Test(int(c.Loser)) {
			return Result{}, snicerrors.Wrap(snicerrors.CodeExternalRankerFailure, "comparison references an unknown loser item", nil)
		}
		g.SetEdge(g.NewEdge(g.Node(int64(c.Winner)), g.Node(int64(c.Loser))))
	}

	rawScores := network.PageRank(g, damping, tolerance)

	scores := make(map[uint64]float64, len(rawScores))
	for nodeID, score := range rawScores {
		scores[uint64(nodeID)] = score
	}

	ascending := make([]uint64, 0, len(scores))
	for id := range scores {
		ascending = append(ascending, id)
	}
	sort.Slice(ascending, func(i, j int) bool {
		if scores[ascending[i]] != scores[ascending[j]] {
			return scores[ascending[i]] < scores[ascending[j]]
		}
		return ascending[i] < ascending[j]
	})

	return Result{Scores: scores, AscendingByRank: ascending}, nil
}
