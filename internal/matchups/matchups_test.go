package matchups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snic/snic/internal/counting"
	"github.com/snic/snic/internal/gber"
)

func TestTakeElementsUniformly(t *testing.T) {
	assert.Equal(t, []uint64{10, 20}, takeElementsUniformly(20, 2, 10))
	assert.Equal(t, []uint64{100, 101}, takeElementsUniformly(3, 2, 100))
	assert.Equal(t, []uint64{1, 201, 401, 601, 801}, takeElementsUniformly(1001, 5, 1))
}

func TestMatchupAllocationsFor_Base2IsAlwaysOneOne(t *testing.T) {
	components := []componentPair{
		{size: 1024, power: 10},
		{size: 1024, power: 10},
		{size: 2, power: 1},
	}
	for _, a := range matchupAllocationsFor(components, 2) {
		assert.Equal(t, uint64(1), a.hubSeats)
		assert.Equal(t, uint64(1), a.spokeSeats)
	}
}

func TestMatchupAllocationsFor_Base10(t *testing.T) {
	shortSlice := []componentPair{{size: 100, power: 2}, {size: 10, power: 1}}
	midSlice := []componentPair{{size: 1000, power: 3}, {size: 100, power: 2}, {size: 10, power: 1}}

	assert.Equal(t, []seatAllocation{{hubSeats: 6, spokeSeats: 4}}, matchupAllocationsFor(shortSlice, 10))
	assert.Equal(t, []seatAllocation{
		{hubSeats: 6, spokeSeats: 4},
		{hubSeats: 7, spokeSeats: 3},
	}, matchupAllocationsFor(midSlice, 10))
}

func TestMatchupAllocationsFor_SeatsConserved(t *testing.T) {
	shortSlice := []componentPair{{size: 100, power: 2}, {size: 10, power: 1}}
	midSlice := []componentPair{{size: 1000, power: 3}, {size: 100, power: 2}, {size: 10, power: 1}}
	longerSlice := []componentPair{
		{size: 1000, power: 3}, {size: 1000, power: 3}, {size: 1000, power: 3}, {size: 1000, power: 3}, {size: 1000, power: 3},
		{size: 100, power: 2}, {size: 100, power: 2}, {size: 100, power: 2}, {size: 100, power: 2},
		{size: 10, power: 1}, {size: 10, power: 1}, {size: 10, power: 1}, {size: 10, power: 1},
	}

	for _, slice := range [][]componentPair{shortSlice, midSlice, longerSlice} {
		allocations := matchupAllocationsFor(slice, 10)
		var total uint64
		for _, a := range allocations {
			total += a.hubSeats + a.spokeSeats
		}
		assert.Equal(t, uint64(len(slice)-1)*10, total)
	}
}

func TestSubnetworkMatchupIterator_MatchupsAreUnique(t *testing.T) {
	it := NewSubnetworkMatchupIterator(256, 2, 0)
	seen := map[[2]uint64]bool{}
	count := 0
	for {
		m, ok := it.Next()
		if !ok {
			break
		}
		require.Len(t, m, 2)
		key := [2]uint64{m[0], m[1]}
		assert.False(t, seen[key], "duplicate matchup %v", m)
		seen[key] = true
		count++
	}
	assert.Equal(t, count, len(seen))
}

func TestSubnetworkMatchupIterator_CountMatchesClosedForm(t *testing.T) {
	const size = 256
	const base = 2
	it := NewSubnetworkMatchupIterator(size, base, 0)
	count := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, counting.MatchupsNumberFor(size, base), uint64(count))
}

func TestManager_StreamsIntraThenInterThenRemainder(t *testing.T) {
	d, err := gber.Decompose(7, 3)
	require.NoError(t, err)

	m := NewManager(d)
	all := m.All()
	require.NotEmpty(t, all)

	for _, matchup := range all {
		assert.Len(t, matchup, 3)
	}

	// 7 = 3 + 3 + 1: two intra-subnetwork matchups (one per component), then
	// the hub/spoke bridge, then the matchup holding the remainder item 6.
	require.Len(t, all, 4)
	assert.Equal(t, []uint64{0, 1, 2}, all[0])
	assert.Equal(t, []uint64{3, 4, 5}, all[1])
	assert.Equal(t, []uint64{0, 3, 4}, all[2])
	assert.ElementsMatch(t, []uint64{1, 2, 6}, all[3])
}

func TestManager_AllMatchupsReferenceValidIndices(t *testing.T) {
	d, err := gber.Decompose(37, 4)
	require.NoError(t, err)

	m := NewManager(d)
	for _, matchup := range m.All() {
		for _, idx := range matchup {
			assert.Less(t, idx, uint64(37))
		}
	}
}
