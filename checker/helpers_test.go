// SPDX-License-Identifier: MIT

package checker_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcheck/geom"
)

// curveOpts describes a sampled test curve y = f(x) on [x0, x1].
type curveOpts struct {
	f      func(x float64) float64
	x0, x1 float64
	n      int
	color  int
	// vertex is the index of the single turning point; <0 for none.
	vertex int
	// upward puts the vertex in Minima, otherwise in Maxima.
	upward bool
	// vertexLabel, if set, labels the turning point.
	vertexLabel string
}

// build samples the curve and derives its knots: intercepts at the sign
// changes of x and y (linear interpolation), the turning point at opts.vertex.
func build(t *testing.T, o curveOpts) *geom.Curve {
	t.Helper()
	pts := make([]geom.Point, o.n)
	for i := range pts {
		x := o.x0 + (o.x1-o.x0)*float64(i)/float64(o.n-1)
		pts[i] = geom.Point{X: x, Y: o.f(x)}
	}

	var k geom.CurveKnots
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if a.Y*b.Y < 0 || (b.Y == 0 && a.Y != 0) {
			s := a.Y / (a.Y - b.Y)
			k.InterX = append(k.InterX, geom.Knot{Point: geom.Point{X: a.X + s*(b.X-a.X), Y: 0}})
		}
		if a.X*b.X < 0 || (b.X == 0 && a.X != 0) {
			s := a.X / (a.X - b.X)
			k.InterY = append(k.InterY, geom.Knot{Point: geom.Point{X: 0, Y: a.Y + s*(b.Y-a.Y)}})
		}
	}
	if o.vertex >= 0 {
		v := geom.Knot{Point: pts[o.vertex]}
		if o.vertexLabel != "" {
			v.Symbol = &geom.Symbol{Point: pts[o.vertex], Text: o.vertexLabel}
		}
		if o.upward {
			k.Minima = append(k.Minima, v)
		} else {
			k.Maxima = append(k.Maxima, v)
		}
	}

	c, err := geom.NewCurve(pts, k, o.color)
	require.NoError(t, err)

	return c
}

// parabola is y = a(x-h)² + k on [h-w, h+w], vertex at the middle sample.
func parabola(h, k, a, w float64, n int) curveOpts {
	return curveOpts{
		f:      func(x float64) float64 { return a*(x-h)*(x-h) + k },
		x0:     h - w,
		x1:     h + w,
		n:      n,
		vertex: (n - 1) / 2,
		upward: a > 0,
	}
}

// reversedCurve returns c drawn in the opposite direction.
func reversedCurve(t *testing.T, c *geom.Curve) *geom.Curve {
	t.Helper()
	k := c.Knots()
	r, err := geom.NewCurve(geom.Reversed(c.Pts()), geom.CurveKnots{
		InterX: geom.Reversed(k.InterX),
		InterY: geom.Reversed(k.InterY),
		Maxima: geom.Reversed(k.Maxima),
		Minima: geom.Reversed(k.Minima),
	}, c.ColorIdx())
	require.NoError(t, err)

	return r
}

// scaledCurve multiplies every coordinate, knots included, by s.
func scaledCurve(t *testing.T, c *geom.Curve, s float64) *geom.Curve {
	t.Helper()
	pts := make([]geom.Point, len(c.Pts()))
	for i, p := range c.Pts() {
		pts[i] = geom.Point{X: p.X * s, Y: p.Y * s}
	}
	scale := func(ks []geom.Knot) []geom.Knot {
		out := make([]geom.Knot, len(ks))
		for i, kn := range ks {
			kn.Point = geom.Point{X: kn.X * s, Y: kn.Y * s}
			out[i] = kn
		}
		return out
	}
	k := c.Knots()
	r, err := geom.NewCurve(pts, geom.CurveKnots{
		InterX: scale(k.InterX), InterY: scale(k.InterY),
		Maxima: scale(k.Maxima), Minima: scale(k.Minima),
	}, c.ColorIdx())
	require.NoError(t, err)

	return r
}

func graph(curves ...*geom.Curve) *geom.Graph {
	return &geom.Graph{CanvasWidth: 600, CanvasHeight: 400, Curves: curves}
}

// wobble adds a small smooth perturbation to f.
func wobble(f func(float64) float64, amp float64) func(float64) float64 {
	return func(x float64) float64 { return f(x) + amp*math.Sin(7*x) }
}
