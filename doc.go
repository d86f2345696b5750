// SPDX-License-Identifier: MIT

// Package graphcheck grades hand-drawn function graphs against a trusted
// reference answer.
//
// 🚀 What is graphcheck?
//
//	A small, dependency-light grader for sketching exercises: a student draws
//	curves on a canvas, the front end extracts points, intercepts, turning
//	points and labels, and graphcheck decides whether the sketch matches.
//
// ✨ What it tolerates
//
//   - Scale and offset: shapes are compared after normalization
//   - Drawing direction: every comparison also tries the reversed stroke
//   - Wobble: shape and position are judged by Dynamic Time Warping
//
// Packages:
//
//	geom/       — points, knots, curves and graphs shared by everything else
//	normalize/  — shape ([0,1]²) and position ([-1,1]²) rescaling
//	direction/  — the "either direction" combinator
//	dtw/        — generic Dynamic Time Warping with windows and memory modes
//	segment/    — splits a curve into sections at its turning points
//	knot/       — quadrant and label tests on knot arrays
//	classify/   — groups curves into colour channels, ordered left to right
//	checker/    — the gated orchestrator returning a Verdict
//	parser/     — JSON input adapter with typed syntax and validation errors
//	store/      — cached reference answers read from disk
//
// Quick example:
//
//	trusted, _ := parser.Parse(answerJSON)
//	submitted, _ := parser.Parse(attemptJSON)
//	v := checker.New().Test(trusted, submitted)
//	fmt.Println(v.Correct, v.Cause()) // false Color Blue: wrong shape
//
// cmd/graphcheck grades two files from the shell; cmd/graphcheck-server
// exposes the same over HTTP.
package graphcheck
