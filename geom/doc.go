// SPDX-License-Identifier: MIT

// Package geom holds the geometry model shared by every stage of the grader:
// points, label symbols, knots (intercepts and turning points) and curves,
// plus the Graph that groups the curves of one submission.
//
// All values are read-only once built. Stages that need transformed
// coordinates (normalization, segmentation) derive new slices and never
// write through the ones stored in a Curve.
//
//	c, err := geom.NewCurve(pts, geom.CurveKnots{Maxima: maxima}, 0)
//	box := c.Bounds() // cached min/max on both axes
//
// Complexity: NewCurve is O(len(pts)); every accessor is O(1).
package geom
