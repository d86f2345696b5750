// SPDX-License-Identifier: MIT

package checker

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/graphcheck/knot"
)

// ErrBadTolerance indicates a tolerance that is not a positive finite number.
var ErrBadTolerance = errors.New("checker: tolerance must be positive")

// Tolerances holds every threshold the gates compare against.
type Tolerances struct {
	// ShapeBoundary bounds the DTW error of the first and last sections.
	ShapeBoundary float64 `yaml:"shape_boundary"`
	// ShapeInterior bounds the DTW error of every other section.
	ShapeInterior float64 `yaml:"shape_interior"`
	// Position bounds the whole-curve DTW error after position normalization.
	Position float64 `yaml:"position"`
	// AlignedPosition bounds the index-aligned error under MetricAligned.
	AlignedPosition float64 `yaml:"aligned_position"`
	// NormDegree is the exponent of the index-aligned error.
	NormDegree float64 `yaml:"norm_degree"`
	// OriginRadius is the "treat as zero" distance for knot quadrants.
	OriginRadius float64 `yaml:"origin_radius"`
	// MinExtent is the smallest width or height a submitted curve may have.
	MinExtent float64 `yaml:"min_extent"`
}

// DefaultTolerances returns the thresholds tuned against hand-drawn input:
// ShapeBoundary 0.5, ShapeInterior 0.1, Position 50, AlignedPosition 0.1,
// NormDegree 2, OriginRadius knot.DefaultOriginRadius, MinExtent 0.2.
func DefaultTolerances() Tolerances {
	return Tolerances{
		ShapeBoundary:   0.5,
		ShapeInterior:   0.1,
		Position:        50,
		AlignedPosition: 0.1,
		NormDegree:      2,
		OriginRadius:    knot.DefaultOriginRadius,
		MinExtent:       0.2,
	}
}

// Validate returns ErrBadTolerance, naming the field, for the first value
// that is not a positive number.
func (t Tolerances) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"shape_boundary", t.ShapeBoundary},
		{"shape_interior", t.ShapeInterior},
		{"position", t.Position},
		{"aligned_position", t.AlignedPosition},
		{"norm_degree", t.NormDegree},
		{"origin_radius", t.OriginRadius},
		{"min_extent", t.MinExtent},
	}
	for _, f := range fields {
		if !(f.v > 0) || f.v > maxTolerance {
			return fmt.Errorf("%w: %s=%v", ErrBadTolerance, f.name, f.v)
		}
	}

	return nil
}

// maxTolerance rejects +Inf and absurd values.
const maxTolerance = 1e9

// Metric selects how whole-curve position error is measured.
type Metric int

const (
	// MetricDTW uses direction-invariant DTW; curves may differ in length.
	MetricDTW Metric = iota
	// MetricAligned uses the index-aligned error when both curves have the
	// same number of points and falls back to DTW otherwise.
	MetricAligned
)

// Option configures a Checker.
type Option func(*Checker)

// WithTolerances replaces the default thresholds. Callers should Validate first.
func WithTolerances(t Tolerances) Option {
	return func(c *Checker) { c.tol = t }
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallel evaluates colour channels concurrently.
func WithParallel(on bool) Option {
	return func(c *Checker) { c.parallel = on }
}

// WithMetric selects the position metric.
func WithMetric(m Metric) Option {
	return func(c *Checker) { c.metric = m }
}

// WithTurningPointEpsilon sets the coordinate tolerance used to locate turning
// points on the curve when segmenting; 0 (default) requires exact equality.
func WithTurningPointEpsilon(eps float64) Option {
	return func(c *Checker) { c.eps = eps }
}
