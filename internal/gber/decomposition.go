package gber

import "github.com/snic/snic/pkg/errors"

// Decomposition is the GBER of N in a given base: N = Σ base^pᵢ + remainder,
// where ComponentPowers holds one entry per unit-coefficient component (an
// exponent with coefficient c appears c times), in non-increasing order.
type Decomposition struct {
	Base            uint64
	ComponentPowers []uint8
	Remainder       uint64
}

// Decompose computes the unique GBER of n in the given base.
//
// It repeatedly extracts the largest term base^p that fits in what's left
// of n: p = IntegerLog(remaining, base), c = remaining / base^p, appends p
// to the component list c times, and subtracts c*base^p from remaining.
// The loop terminates because remaining strictly decreases and its
// integer log drops by at least one every iteration.
func Decompose(n, base uint64) (Decomposition, error) {
	if base < 2 {
		return Decomposition{}, errors.Wrap(errors.CodeInvalidBase, "base must be greater than 1", nil)
	}

	remainder := n
	var powers []uint8
	for remainder >= base {
		p := IntegerLog(remainder, base)
		component := Pow(base, p)
		c := remainder / component
		for i := uint64(0); i < c; i++ {
			powers = append(powers, p)
		}
		remainder -= c * component
	}

	return Decomposition{
		Base:            base,
		ComponentPowers: powers,
		Remainder:       remainder,
	}, nil
}

// ComponentValue returns base^power as a plain integer.
func (d Decomposition) ComponentValue(power uint8) uint64 {
	return Pow(d.Base, power)
}

// StreamComponents returns the integer value of every component in the
// decomposition (one entry per ComponentPowers entry), excluding the
// remainder.
func (d Decomposition) StreamComponents() []uint64 {
	components := make([]uint64, len(d.ComponentPowers))
	for i, p := range d.ComponentPowers {
		components[i] = d.ComponentValue(p)
	}
	return components
}

// ToDecimal reconstructs the original integer from the decomposition.
func (d Decomposition) ToDecimal() uint64 {
	var total uint64
	for _, c := range d.StreamComponents() {
		total += c
	}
	return total + d.Remainder
}

// Pow returns base^exp for non-negative integer exponents.
func Pow(base uint64, exp uint8) uint64 {
	result := uint64(1)
	for i := uint8(0); i < exp; i++ {
		result *= base
	}
	return result
}
