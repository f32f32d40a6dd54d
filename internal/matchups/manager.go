package matchups

import "github.com/snic/snic/internal/gber"

// Manager streams every matchup of a network whose size is given by a
// GBER. It generates intra-subnetwork matchups first (one
// SubnetworkMatchupIterator per component, in descending-exponent order),
// then inter-subnetwork bridge matchups, then the remainder matchup.
type Manager struct {
	decomposition        gber.Decomposition
	subnetworkIterators  []*SubnetworkMatchupIterator
	interMatchups        [][]uint64
	subnetworkCursor     int
	interMatchupsCursor  int
}

// NewManager builds a Manager for the given network GBER.
func NewManager(d gber.Decomposition) *Manager {
	sizes := d.StreamComponents()
	iterators := make([]*SubnetworkMatchupIterator, len(sizes))
	var offset uint64
	for i, size := range sizes {
		iterators[i] = NewSubnetworkMatchupIterator(size, d.Base, offset)
		offset += size
	}

	return &Manager{
		decomposition:       d,
		subnetworkIterators: iterators,
		interMatchups:       BuildBridgeMatchups(d),
	}
}

// Next returns the next matchup in the stream and true, or (nil, false)
// once every matchup has been produced.
func (m *Manager) Next() ([]uint64, bool) {
	for m.subnetworkCursor < len(m.subnetworkIterators) {
		if matchup, ok := m.subnetworkIterators[m.subnetworkCursor].Next(); ok {
			return matchup, true
		}
		m.subnetworkCursor++
	}

	if m.interMatchupsCursor < len(m.interMatchups) {
		matchup := m.interMatchups[m.interMatchupsCursor]
		m.interMatchupsCursor++
		return matchup, true
	}

	return nil, false
}

// All drains the Manager and returns every matchup it produces.
func (m *Manager) All() [][]uint64 {
	var matchups [][]uint64
	for {
		matchup, ok := m.Next()
		if !ok {
			return matchups
		}
		matchups = append(matchups, matchup)
	}
}
