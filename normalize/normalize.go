// SPDX-License-Identifier: MIT

// Package normalize rescales point sequences so that curves drawn at
// different sizes can be compared.
//
//   - Shape maps a sequence into the unit square [0,1]² using its own bounding
//     box, discarding position and scale.
//   - Position divides by the largest absolute coordinate on each axis,
//     mapping into [-1,1]² while keeping the sign relative to the origin.
//
// An axis with zero range (Shape) or zero maximum magnitude (Position) maps
// to 0 for every point, so neither function ever produces NaN or Inf.
// Both return a new slice of the same length and leave the input unchanged.
package normalize

import (
	"math"

	"github.com/katalvlaran/graphcheck/geom"
)

// Shape maps pts into [0,1]² by their bounding box.
// Complexity: O(n) time and memory.
func Shape(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	if len(pts) == 0 {
		return out
	}
	b := geom.BoundsOf(pts)
	rx, ry := b.Width(), b.Height()
	for i, p := range pts {
		out[i] = geom.Point{X: scale(p.X-b.MinX, rx), Y: scale(p.Y-b.MinY, ry)}
	}

	return out
}

// Position maps pts into [-1,1]² by the largest |x| and |y|.
// Complexity: O(n) time and memory.
func Position(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	var mx, my float64
	for _, p := range pts {
		mx = math.Max(mx, math.Abs(p.X))
		my = math.Max(my, math.Abs(p.Y))
	}
	for i, p := range pts {
		out[i] = geom.Point{X: scale(p.X, mx), Y: scale(p.Y, my)}
	}

	return out
}

// scale returns v/d, or 0 when d is zero.
func scale(v, d float64) float64 {
	if d == 0 {
		return 0
	}

	return v / d
}
