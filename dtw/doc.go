// SPDX-License-Identifier: MIT

// Package dtw computes Dynamic Time Warping (DTW) distances between
// sequences, with optional alignment path and memory optimizations.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. Here it aligns a student's
//	free-hand stroke with a reference curve sampled at a different rate.
//
// ✨ Key features:
//   - generic over the element type: DTW[T] takes a cost function
//   - full-matrix mode: exact O(N·M) time & memory, path recovery
//   - TwoRows / NoMemory modes: O(M) memory, distance only
//   - optional Sakoe–Chiba window (|i−j| ≤ w)
//   - slope penalty to discourage excessive stretching
//   - Curves: squared-Euclidean point DTW tried forward and with the
//     second sequence reversed, returning the minimum
//   - AlignedError: equal-length, index-aligned error for resampled curves
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/graphcheck/dtw"
//
//	// direction-invariant curve cost
//	cost, err := dtw.Curves(trustedPts, submittedPts, nil)
//
//	// raw series with a path
//	opts := dtw.DefaultOptions()
//	opts.ReturnPath = true
//	opts.MemoryMode = dtw.FullMatrix
//	dist, path, err := dtw.Series(a, b, &opts)
//
// Boundary cells D[i][0] and D[0][j] start at +Inf and D[0][0] at 0, so every
// alignment starts at the first pair of elements and no prefix can be skipped
// for free.
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows, NoMemory)
package dtw
