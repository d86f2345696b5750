// SPDX-License-Identifier: MIT

package geom

// CurveKnots groups the four knot arrays derived for a curve.
type CurveKnots struct {
	InterX []Knot // x-intercepts
	InterY []Knot // y-intercepts
	Maxima []Knot
	Minima []Knot
}

// Curve is an ordered point sequence (drawing order) with its derived knots,
// the colour channel it was drawn in and a cached bounding box.
//
// The slices returned by the accessors are shared with the Curve and must be
// treated as read-only.
type Curve struct {
	pts      []Point
	knots    CurveKnots
	colorIdx int
	box      Box
}

// NewCurve builds a Curve, copying pts and computing its bounding box.
// Returns ErrEmptyCurve if pts is empty.
// Complexity: O(len(pts)).
func NewCurve(pts []Point, knots CurveKnots, colorIdx int) (*Curve, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyCurve
	}
	own := make([]Point, len(pts))
	copy(own, pts)

	return &Curve{
		pts:      own,
		knots:    knots,
		colorIdx: colorIdx,
		box:      BoundsOf(own),
	}, nil
}

// Pts returns the curve points in drawing order.
func (c *Curve) Pts() []Point { return c.pts }

// InterX returns the x-intercepts.
func (c *Curve) InterX() []Knot { return c.knots.InterX }

// InterY returns the y-intercepts.
func (c *Curve) InterY() []Knot { return c.knots.InterY }

// Maxima returns the local maxima.
func (c *Curve) Maxima() []Knot { return c.knots.Maxima }

// Minima returns the local minima.
func (c *Curve) Minima() []Knot { return c.knots.Minima }

// Knots returns all four knot arrays.
func (c *Curve) Knots() CurveKnots { return c.knots }

// ColorIdx returns the colour channel index.
func (c *Curve) ColorIdx() int { return c.colorIdx }

// Bounds returns the cached bounding box.
func (c *Curve) Bounds() Box { return c.box }

// TurningPoints returns the maxima followed by the minima, as a new slice.
func (c *Curve) TurningPoints() []Knot {
	out := make([]Knot, 0, len(c.knots.Maxima)+len(c.knots.Minima))
	out = append(out, c.knots.Maxima...)

	return append(out, c.knots.Minima...)
}

// Graph is one parsed submission: a canvas and the curves drawn on it.
type Graph struct {
	CanvasWidth  float64
	CanvasHeight float64
	Descriptor   string
	Curves       []*Curve
}
