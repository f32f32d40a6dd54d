// Package matchups generates the matchups of a network from the GBER of
// its size: intra-subnetwork matchups from a hierarchical section-splitting
// iterator (base sections per split), followed by inter-subnetwork bridge matchups that give every
// subnetwork a channel for its comparisons to reach the others.
package matchups

import "github.com/snic/snic/internal/gber"

type sectionState struct {
	head, tail uint64
}

// SubnetworkMatchupIterator lazily produces the matchups of a single
// subnetwork of a given size, referencing items by index into the whole
// network (offset by Offset).
//
// It works level by level: at level L the subnetwork is split into
// base^L equal sections, each tracked by a (head, tail) cursor. A matchup
// takes the current head of `base` consecutive sections and advances
// those heads; once a section's cursor reaches its tail the whole group of
// `base` sections is skipped from then on. When every section at a level
// is exhausted the iterator moves to the next, finer level. It stops once
// a level would need more sections than the subnetwork has elements.
type SubnetworkMatchupIterator struct {
	NetworkSize uint64
	MatchupSize uint64
	Offset      uint64

	level     uint8
	sections  []sectionState
	groupHead int
}

// NewSubnetworkMatchupIterator builds an iterator over a subnetwork of
// networkSize elements, grouping matchupSize at a time, with items
// addressed starting at offset in the enclosing network.
func NewSubnetworkMatchupIterator(networkSize, matchupSize, offset uint64) *SubnetworkMatchupIterator {
	return &SubnetworkMatchupIterator{
		NetworkSize: networkSize,
		MatchupSize: matchupSize,
		Offset:      offset,
	}
}

func (it *SubnetworkMatchupIterator) sectionsNumber() uint64 {
	return gber.Pow(it.MatchupSize, it.level)
}

func (it *SubnetworkMatchupIterator) initLevel() bool {
	it.level++
	sectionsNumber := it.sectionsNumber()
	if sectionsNumber > it.NetworkSize {
		return false
	}

	sectionSize := it.NetworkSize / sectionsNumber
	it.sections = it.sections[:0]
	head := uint64(0)
	for tail := sectionSize; tail <= it.NetworkSize; tail += sectionSize {
		it.sections = append(it.sections, sectionState{head: head, tail: tail})
		head += sectionSize
	}
	it.groupHead = 0
	return true
}

func (it *SubnetworkMatchupIterator) incrementGroupHeadIfExhausted() {
	s := it.sections[it.groupHead]
	if s.head == s.tail {
		it.groupHead += int(it.MatchupSize)
	}
}

// Next returns the next matchup (a slice of MatchupSize network-global
// indices) and true, or (nil, false) once the subnetwork is exhausted.
func (it *SubnetworkMatchupIterator) Next() ([]uint64, bool) {
	if it.groupHead >= len(it.sections) {
		if !it.initLevel() {
			return nil, false
		}
	}

	groupSize := int(it.MatchupSize)
	matchup := make([]uint64, 0, groupSize)
	end := it.groupHead + groupSize
	for ix := it.groupHead; ix < end; ix++ {
		oldHead := it.sections[ix].head
		it.sections[ix].head++
		matchup = append(matchup, oldHead+it.Offset)
	}
	it.incrementGroupHeadIfExhausted()

	return matchup, true
}
