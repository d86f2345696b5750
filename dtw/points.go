// SPDX-License-Identifier: MIT

package dtw

import (
	"math"

	"github.com/katalvlaran/graphcheck/direction"
	"github.com/katalvlaran/graphcheck/geom"
)

// Series computes DTW over scalar sequences with cost |a_i - b_j|.
func Series(a, b []float64, opts *Options) (float64, []Coord, error) {
	return DTW(a, b, absDiff, opts)
}

// Points computes DTW over point sequences with squared Euclidean cost,
// in the given direction only.
func Points(a, b []geom.Point, opts *Options) (float64, []Coord, error) {
	return DTW(a, b, geom.DistSq, opts)
}

// Curves returns the direction-invariant DTW cost of two point sequences:
// the minimum of Points(a, b) and Points(a, reversed b).
//
// A free-hand stroke can be drawn either way, so every whole-curve or
// whole-section comparison goes through Curves. opts must not request a path.
func Curves(a, b []geom.Point, opts *Options) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.ReturnPath {
		return 0, ErrBadInput
	}
	if err := o.validate(); err != nil {
		return 0, err
	}
	cost := func(x, y []geom.Point) float64 {
		d, _, _ := Points(x, y, &o) // inputs and options already validated
		return d
	}

	return direction.BestOf(a, b, cost, direction.MinCost), nil
}

// AlignedError is the index-aligned error of two equal-length sequences:
//
//	(1/n · Σ |a_i − b_i|^degree)^(1/degree)
//
// computed forward and with b reversed; the minimum is returned. It suits
// curves already resampled to the same length, where warping is unnecessary.
//
// Errors: ErrEmptyInput, ErrLengthMismatch, ErrBadInput (degree <= 0 or NaN).
// Complexity: O(n).
func AlignedError(a, b []geom.Point, degree float64) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyInput
	}
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	if !(degree > 0) {
		return 0, ErrBadInput
	}
	aligned := func(x, y []geom.Point) float64 {
		sum := 0.0
		for i := range x {
			sum += math.Pow(geom.Dist(x[i], y[i]), degree)
		}
		return math.Pow(sum/float64(len(x)), 1/degree)
	}

	return direction.BestOf(a, b, aligned, direction.MinCost), nil
}

func absDiff(x, y float64) float64 {
	return math.Abs(x - y)
}
