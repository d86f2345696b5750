// SPDX-License-Identifier: MIT

// Package knot compares the special points of two corresponding curves:
// whether they sit in compatible quadrants, and whether they carry the same
// labels.
//
// Both tests walk index-aligned knot arrays, stop at the first failing index,
// and on failure retry once with the submitted array reversed, since the
// student may have drawn the curve in the opposite direction.
package knot

import (
	"math"

	"github.com/katalvlaran/graphcheck/direction"
	"github.com/katalvlaran/graphcheck/geom"
)

// DefaultOriginRadius is the distance from an axis within which a coordinate
// is treated as zero, in normalized canvas units.
const DefaultOriginRadius = 0.025

// TestPosition reports whether every trusted knot and its submitted
// counterpart lie in compatible positions relative to the axes.
//
// A pair is compatible when both knots are within radius of the origin on both
// axes, or when on each axis the two coordinates do not have opposite signs or
// at least one of them is within radius of zero.
//
// Arrays of different lengths never match.
func TestPosition(trusted, submitted []geom.Knot, radius float64) bool {
	if len(trusted) != len(submitted) {
		return false
	}
	pass := func(t, s []geom.Knot) bool {
		return all(t, s, func(a, b geom.Knot) bool { return positionCompatible(a, b, radius) })
	}

	return direction.BestOf(trusted, submitted, pass, direction.AnyMatch)
}

// TestSymbols reports whether every trusted knot and its submitted
// counterpart carry the same Symbol, XSymbol and YSymbol labels: each slot is
// either nil on both sides or has equal Text on both sides.
//
// Arrays of different lengths never match.
func TestSymbols(trusted, submitted []geom.Knot) bool {
	if len(trusted) != len(submitted) {
		return false
	}
	pass := func(t, s []geom.Knot) bool { return all(t, s, symbolsEqual) }

	return direction.BestOf(trusted, submitted, pass, direction.AnyMatch)
}

// all applies ok pairwise and stops at the first failure.
func all(t, s []geom.Knot, ok func(a, b geom.Knot) bool) bool {
	for i := range t {
		if !ok(t[i], s[i]) {
			return false
		}
	}

	return true
}

func positionCompatible(a, b geom.Knot, r float64) bool {
	if nearZero(a.X, r) && nearZero(a.Y, r) && nearZero(b.X, r) && nearZero(b.Y, r) {
		return true
	}

	return axisCompatible(a.X, b.X, r) && axisCompatible(a.Y, b.Y, r)
}

func axisCompatible(u, v, r float64) bool {
	return u*v >= 0 || nearZero(u, r) || nearZero(v, r)
}

func nearZero(v, r float64) bool {
	return math.Abs(v) < r
}

func symbolsEqual(a, b geom.Knot) bool {
	return sameLabel(a.Symbol, b.Symbol) && sameLabel(a.XSymbol, b.XSymbol) && sameLabel(a.YSymbol, b.YSymbol)
}

func sameLabel(a, b *geom.Symbol) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Text == b.Text
}
