// SPDX-License-Identifier: MIT

package geom

import (
	"errors"
	"math"
)

// ErrEmptyCurve indicates a curve was built from an empty point list.
var ErrEmptyCurve = errors.New("geom: curve must have at least one point")

// Point is an immutable (x, y) pair. It has no identity beyond its coordinates.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// DistSq returns the squared Euclidean distance between a and b.
func DistSq(a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y

	return dx*dx + dy*dy
}

// Symbol is a text label placed on the canvas.
//
// BindCurveIdx and CatIndex are optional; nil means the submission did not
// carry them.
type Symbol struct {
	Point
	Text         string
	BindCurveIdx *int   // index of the curve this label annotates
	Category     string // label kind, e.g. "interX"
	CatIndex     *int   // order among labels of the same Category
}

// Knot is a distinguished point of a curve: an intercept, a maximum or a minimum.
// Symbol labels the knot itself, XSymbol and YSymbol label its projections
// onto the x and y axes. Any of them may be nil.
type Knot struct {
	Point
	Symbol  *Symbol
	XSymbol *Symbol
	YSymbol *Symbol
}

// Box is an axis-aligned bounding box.
type Box struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// Width returns MaxX-MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// BoundsOf computes the bounding box of pts. It returns the zero Box for an
// empty slice.
func BoundsOf(pts []Point) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinX: pts[0].X, MaxX: pts[0].X, MinY: pts[0].Y, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}

	return b
}

// Reversed returns a reversed copy of s. The input is left untouched.
func Reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}
