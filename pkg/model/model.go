// Package model holds the domain types shared across SNIC's core packages
// and its HTTP API boundary.
package model

// DecompositionResponse is the wire form of a gber.Decomposition.
type DecompositionResponse struct {
	Base            uint64  `json:"base"`
	ComponentPowers []uint8 `json:"component_powers"`
	Remainder       uint64  `json:"remainder"`
	Value           uint64  `json:"value"`
}

// Matchup is a single group of competing item indices.
type Matchup struct {
	Items []uint64 `json:"items"`
}

// RankRequest asks for item scores given a stream of ranked matchups, each
// ordered best to worst. Every matchup is expanded into its implied
// pairwise comparisons via the expansion mould before ranking.
type RankRequest struct {
	RankedMatchups [][]uint64 `json:"ranked_matchups"`
	Damping        *float64   `json:"damping,omitempty"`
	Tolerance      *float64   `json:"tolerance,omitempty"`
}

// RankResponse is the wire form of a ranker.Result.
type RankResponse struct {
	Scores          map[uint64]float64 `json:"scores"`
	AscendingByRank []uint64            `json:"ascending_by_rank"`
}

// CountResponse is the wire form of a closed-form matchup/comparison count.
type CountResponse struct {
	N                 uint64 `json:"n"`
	Base              uint64 `json:"base"`
	MatchupsNumber    uint64 `json:"matchups_number"`
	ComparisonsNumber uint64 `json:"comparisons_number"`
}
