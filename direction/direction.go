// SPDX-License-Identifier: MIT

// Package direction implements the reverse-retry policy used wherever a
// student's drawing may run in the opposite direction to the reference:
// whole-curve DTW, section lists, knot positions and knot labels.
//
// BestOf runs a comparison on (a, b) and hands its result, together with a
// lazy comparison on (a, reversed b), to a pick function. The pick decides
// whether the reversed comparison is needed at all:
//
//	// cost: always try both, keep the smaller
//	d := direction.BestOf(a, b, cost, direction.MinCost)
//	// predicate: retry only when the forward pass failed
//	ok := direction.BestOf(a, b, match, direction.AnyMatch)
package direction

import (
	"math"

	"github.com/katalvlaran/graphcheck/geom"
)

// BestOf evaluates compare(a, b) and combines it with compare(a, reversed b)
// through pick. The reversed comparison runs only if pick calls rev.
// Neither a nor b is mutated.
func BestOf[T, R any](a, b []T, compare func(a, b []T) R, pick func(fwd R, rev func() R) R) R {
	fwd := compare(a, b)

	return pick(fwd, func() R { return compare(a, geom.Reversed(b)) })
}

// MinCost keeps the smaller of the forward and reversed costs.
func MinCost(fwd float64, rev func() float64) float64 {
	return math.Min(fwd, rev())
}

// AnyMatch accepts when the forward pass matched, otherwise retries reversed.
func AnyMatch(fwd bool, rev func() bool) bool {
	return fwd || rev()
}
