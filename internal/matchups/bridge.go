package matchups

import (
	"github.com/snic/snic/internal/gber"
	"github.com/snic/snic/pkg/errors"
)

// componentPair couples a component's integer size with the GBER exponent
// it came from.
type componentPair struct {
	size  uint64
	power uint8
}

type seatAllocation struct {
	hubSeats, spokeSeats uint64
}

// allocateSeatsFor splits matchupSize seats between a hub component (whose
// exponent is hubExponent) and a spoke component (spokeExponent), roughly
// in proportion to their exponents (floor division for the hub share). base
// 2 is special-cased to a 1/1 split.
func allocateSeatsFor(hubExponent, spokeExponent uint8, matchupSize uint64) (hubSeats, spokeSeats uint64) {
	if matchupSize == 2 {
		return 1, 1
	}
	totalRatioPool := uint64(hubExponent) + uint64(spokeExponent)
	hubSeats = (matchupSize * uint64(hubExponent)) / totalRatioPool
	spokeSeats = matchupSize - hubSeats
	return hubSeats, spokeSeats
}

// matchupAllocationsFor designates the first component with a non-zero
// exponent as the hub and returns the (hub, spoke) seat split against every
// other component with a non-zero exponent, in order.
func matchupAllocationsFor(components []componentPair, matchupSize uint64) []seatAllocation {
	nonZero := filterNonZeroPower(components)
	if len(nonZero) == 0 {
		return nil
	}
	hubExponent := nonZero[0].power
	allocations := make([]seatAllocation, 0, len(nonZero)-1)
	for _, spoke := range nonZero[1:] {
		hubSeats, spokeSeats := allocateSeatsFor(hubExponent, spoke.power, matchupSize)
		allocations = append(allocations, seatAllocation{hubSeats: hubSeats, spokeSeats: spokeSeats})
	}
	return allocations
}

func filterNonZeroPower(components []componentPair) []componentPair {
	var out []componentPair
	for _, c := range components {
		if c.power > 0 {
			out = append(out, c)
		}
	}
	return out
}

// takeElementsUniformly picks quantity indices spread evenly across
// [0, networkSize), shifted by offset. Used to reserve a well-distributed
// set of seats in a component for bridge matchups, rather than always
// pulling from one end of it.
func takeElementsUniformly(networkSize, quantity, offset uint64) []uint64 {
	errors.Precondition(quantity >= 1, "take_elements_uniformly requires quantity >= 1, got %d", quantity)

	windowSize := networkSize / quantity
	result := make([]uint64, 0, quantity)
	for ix := uint64(0); ix < networkSize && uint64(len(result)) < quantity; ix += windowSize {
		result = append(result, ix+offset)
	}
	return result
}

func sliceFrom(view []uint64, start, quantity uint64) []uint64 {
	return append([]uint64(nil), view[start:start+quantity]...)
}

// BuildBridgeMatchups plans the inter-subnetwork matchups that let every
// subnetwork's comparisons reach the rest of the network: one bridge
// matchup per spoke component (seating a proportional share of the hub
// alongside a uniformly-sampled share of that spoke), plus one final
// matchup seating whatever's left in the network's remainder against the
// hub seats it didn't use.
func BuildBridgeMatchups(d gber.Decomposition) [][]uint64 {
	sizes := d.StreamComponents()
	pairs := make([]componentPair, len(sizes))
	for i, size := range sizes {
		pairs[i] = componentPair{size: size, power: d.ComponentPowers[i]}
	}

	allocations := matchupAllocationsFor(pairs, d.Base)

	var totalHubSeats uint64
	for _, a := range allocations {
		totalHubSeats += a.hubSeats
	}
	if d.Remainder > 0 {
		totalHubSeats += d.Base - d.Remainder
	}
	if totalHubSeats == 0 {
		return nil
	}

	nonZero := filterNonZeroPower(pairs)
	errors.Precondition(len(nonZero) > 0, "bridge seats were allocated but the network has no component to host a hub")

	indexOffset := uint64(0)
	hubSeatOffset := uint64(0)
	hubSize := nonZero[0].size
	reservedHubSeats := takeElementsUniformly(hubSize, totalHubSeats, indexOffset)
	indexOffset += hubSize

	interMatchups := make([][]uint64, 0, len(allocations)+1)
	for i, alloc := range allocations {
		spoke := nonZero[i+1]
		reservedSpokeSeats := takeElementsUniformly(spoke.size, alloc.spokeSeats, indexOffset)
		currentHubSeats := sliceFrom(reservedHubSeats, hubSeatOffset, alloc.hubSeats)
		indexOffset += spoke.size
		hubSeatOffset += alloc.hubSeats

		matchup := make([]uint64, 0, len(currentHubSeats)+len(reservedSpokeSeats))
		matchup = append(matchup, currentHubSeats...)
		matchup = append(matchup, reservedSpokeSeats...)
		interMatchups = append(interMatchups, matchup)
	}

	if d.Remainder == 0 {
		return interMatchups
	}

	remainderHubSeats := sliceFrom(reservedHubSeats, hubSeatOffset, d.Base-d.Remainder)
	remainderMatchup := make([]uint64, 0, d.Remainder+uint64(len(remainderHubSeats)))
	for ix := indexOffset; ix < indexOffset+d.Remainder; ix++ {
		remainderMatchup = append(remainderMatchup, ix)
	}
	remainderMatchup = append(remainderMatchup, remainderHubSeats...)
	interMatchups = append(interMatchups, remainderMatchup)

	return interMatchups
}
