// Package gber implements the Generalised Base Exponential Representation:
// a unique decomposition of a non-negative integer N into a sum of powers
// of a base b plus a remainder, N = Σ cᵢ·b^pᵢ + r with 0 < cᵢ < b.
package gber

import "github.com/snic/snic/pkg/errors"

// IntegerLog returns floor(log_b(n)), computed by iterative division so
// the result is exact across the full integer range (a floating-point
// log loses precision near the top of the range).
//
// n must be >= 1 and base must be >= 2; violating either is a programmer
// error and panics, per the library's precondition-violation contract.
func IntegerLog(n, base uint64) uint8 {
	errors.Precondition(n >= 1, "integer_log requires n >= 1, got %d", n)
	errors.Precondition(base >= 2, "integer_log requires base >= 2, got %d", base)

	var log uint8
	for n >= base {
		n /= base
		log++
	}
	return log
}
