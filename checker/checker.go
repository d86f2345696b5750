// SPDX-License-Identifier: MIT

package checker

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/graphcheck/classify"
	"github.com/katalvlaran/graphcheck/direction"
	"github.com/katalvlaran/graphcheck/dtw"
	"github.com/katalvlaran/graphcheck/geom"
	"github.com/katalvlaran/graphcheck/knot"
	"github.com/katalvlaran/graphcheck/normalize"
	"github.com/katalvlaran/graphcheck/segment"
)

// Checker grades submitted graphs against trusted ones. It holds no mutable
// state after New and is safe for concurrent use.
type Checker struct {
	tol      Tolerances
	metric   Metric
	eps      float64
	parallel bool
	logger   *slog.Logger

	// distance is the direction-invariant section/curve cost.
	distance func(a, b []geom.Point) float64
}

// New returns a Checker with DefaultTolerances, MetricDTW, exact turning
// point matching and sequential evaluation, modified by opts.
func New(opts ...Option) *Checker {
	c := &Checker{
		tol:      DefaultTolerances(),
		metric:   MetricDTW,
		logger:   slog.New(slog.DiscardHandler),
		distance: curveDistance,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Tolerances returns the thresholds in use.
func (c *Checker) Tolerances() Tolerances { return c.tol }

// curveDistance wraps dtw.Curves for inputs the gates guarantee non-empty.
func curveDistance(a, b []geom.Point) float64 {
	d, _ := dtw.Curves(a, b, nil)
	return d
}

// Test compares submitted against trusted, channel by channel in the order
// Blue, Orange, Green, and reports the first gate that fails. A nil graph is
// treated as a graph without curves.
//
// Gates, per channel:
//  1. skip the channel if neither side has curves in it
//  2. curve counts must agree
//  3. every submitted curve must span MinExtent on at least one axis
//  4. intercept and turning point counts must agree pairwise
//  5. shape: per-section DTW after shape normalization
//  6. position: whole-curve error after position normalization, and knot quadrants
//  7. labels on every knot
//
// Gates 2-4 are cheap and run before any DTW work.
func (c *Checker) Test(trusted, submitted *geom.Graph) Verdict {
	tc, sc := classify.Classify(curvesOf(trusted)), classify.Classify(curvesOf(submitted))

	var results [classify.NumChannels]Verdict
	if c.parallel {
		var g errgroup.Group
		for _, ch := range classify.Channels() {
			g.Go(func() error {
				results[ch] = c.checkChannel(ch, tc[ch], sc[ch])
				return nil
			})
		}
		_ = g.Wait() // workers never fail
	} else {
		for _, ch := range classify.Channels() {
			results[ch] = c.checkChannel(ch, tc[ch], sc[ch])
			if !results[ch].Correct {
				break
			}
		}
	}

	for _, v := range results {
		if !v.Correct {
			c.logger.Info("submission rejected", "channel", v.Channel.String(), "reason", v.Reason.String())
			return v
		}
	}

	return Verdict{Correct: true}
}

func curvesOf(g *geom.Graph) []*geom.Curve {
	if g == nil {
		return nil
	}

	return g.Curves
}

// checkChannel runs gates 1-7 for the curves of a single channel.
func (c *Checker) checkChannel(ch classify.Channel, trusted, submitted []*geom.Curve) Verdict {
	fail := func(r Reason) Verdict { return Verdict{Reason: r, Channel: ch} }
	pass := Verdict{Correct: true, Channel: ch}

	if len(trusted) == 0 && len(submitted) == 0 {
		return pass
	}
	log := c.logger.With("channel", ch.String())
	log.Debug("testing channel", "curves", len(trusted))

	if len(trusted) != len(submitted) {
		return fail(WrongNumberOfCurves)
	}
	for _, s := range submitted {
		if b := s.Bounds(); b.Width() < c.tol.MinExtent && b.Height() < c.tol.MinExtent {
			return fail(CurveTooSmall)
		}
	}
	for i := range trusted {
		if len(trusted[i].InterX()) != len(submitted[i].InterX()) ||
			len(trusted[i].InterY()) != len(submitted[i].InterY()) {
			return fail(WrongNumberOfIntercepts)
		}
	}
	for i := range trusted {
		if len(trusted[i].Maxima()) != len(submitted[i].Maxima()) ||
			len(trusted[i].Minima()) != len(submitted[i].Minima()) {
			return fail(WrongNumberOfTurningPoints)
		}
	}
	for i := range trusted {
		if !c.shapeMatches(log.With("curve", i), trusted[i], submitted[i]) {
			return fail(WrongShape)
		}
	}
	for i := range trusted {
		if !c.positionMatches(log.With("curve", i), trusted[i], submitted[i]) {
			return fail(WrongPosition)
		}
	}
	for i := range trusted {
		if !labelsMatch(trusted[i], submitted[i]) {
			return fail(WrongLabels)
		}
	}

	return pass
}

// shapeMatches compares the curves section by section. The submitted section
// list is retried in reverse order when the forward pass fails.
func (c *Checker) shapeMatches(log *slog.Logger, t, s *geom.Curve) bool {
	ts, ss := segment.Split(t, c.eps), segment.Split(s, c.eps)
	if len(ts) != len(ss) {
		log.Debug("section count differs", "trusted", len(ts), "submitted", len(ss))
		return false
	}
	sections := func(a, b [][]geom.Point) bool {
		for j := range a {
			tol := c.tol.ShapeInterior
			if j == 0 || j == len(a)-1 {
				tol = c.tol.ShapeBoundary
			}
			d := c.distance(normalize.Shape(a[j]), normalize.Shape(b[j]))
			log.Debug("section error", "section", j, "error", d, "tolerance", tol)
			if d > tol {
				return false
			}
		}
		return true
	}

	return direction.BestOf(ts, ss, sections, direction.AnyMatch)
}

func (c *Checker) positionMatches(log *slog.Logger, t, s *geom.Curve) bool {
	tp, sp := normalize.Position(t.Pts()), normalize.Position(s.Pts())

	if c.metric == MetricAligned && len(tp) == len(sp) {
		e, err := dtw.AlignedError(tp, sp, c.tol.NormDegree)
		log.Debug("aligned position error", "error", e, "tolerance", c.tol.AlignedPosition)
		if err != nil || !(e < c.tol.AlignedPosition) {
			return false
		}
	} else {
		d := c.distance(tp, sp)
		log.Debug("position error", "error", d, "tolerance", c.tol.Position)
		if !(d < c.tol.Position) {
			return false
		}
	}

	r := c.tol.OriginRadius
	tk, sk := t.Knots(), s.Knots()

	return knot.TestPosition(tk.InterX, sk.InterX, r) &&
		knot.TestPosition(tk.InterY, sk.InterY, r) &&
		knot.TestPosition(tk.Maxima, sk.Maxima, r) &&
		knot.TestPosition(tk.Minima, sk.Minima, r)
}

func labelsMatch(t, s *geom.Curve) bool {
	tk, sk := t.Knots(), s.Knots()

	return knot.TestSymbols(tk.InterX, sk.InterX) &&
		knot.TestSymbols(tk.InterY, sk.InterY) &&
		knot.TestSymbols(tk.Maxima, sk.Maxima) &&
		knot.TestSymbols(tk.Minima, sk.Minima)
}
