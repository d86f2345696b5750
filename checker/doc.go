// SPDX-License-Identifier: MIT

// Package checker grades a hand-drawn graph against a trusted reference and
// returns a Verdict: match, or the first gate the submission failed.
//
// Curves are paired per colour channel (see package classify), then pass
// through a fixed sequence of gates: curve count, minimum size, intercept and
// turning point counts, shape, position and labels. The cheap counting gates
// run first, so a structurally wrong submission is rejected before any DTW
// work. Only the first failure is reported.
//
//	c := checker.New(checker.WithLogger(slog.Default()))
//	v := c.Test(trusted, submitted)
//	if !v.Correct {
//		fmt.Println(v.Cause()) // "Color Blue: wrong shape"
//	}
//
// Shape is judged per section between turning points (package segment) on
// shape-normalized coordinates, with a looser tolerance for the first and last
// section. Position is judged on the whole curve after position
// normalization and on the quadrant of every knot. Every comparison accepts a
// curve drawn in the opposite direction.
package checker
