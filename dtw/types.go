// SPDX-License-Identifier: MIT

package dtw

import "errors"

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix in memory.
//     Allows distance + full backtrace for the optimal warping path.
//     Memory: O(n·m).
//
//   - TwoRows — only keep two rows (current and previous).
//     Memory O(m); cannot recover the path.
//
//   - NoMemory — a single row updated in place, carrying the diagonal in a
//     scalar. Memory O(m); cannot recover the path.
type MemoryMode int

const (
	// FullMatrix stores all rows and supports path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows keeps the previous and current rows only.
	TwoRows

	// NoMemory keeps one row and a carried diagonal.
	NoMemory
)

// Sentinel errors returned by DTW and its wrappers.
var (
	// ErrEmptyInput indicates one or both inputs are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an invalid option value (Window < -1, negative or
	// NaN SlopePenalty, unknown MemoryMode, non-positive norm degree).
	ErrBadInput = errors.New("dtw: invalid options")

	// ErrPathNeedsMatrix indicates that path recovery requires FullMatrix mode.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")

	// ErrLengthMismatch indicates an index-aligned metric got unequal lengths.
	ErrLengthMismatch = errors.New("dtw: index-aligned error needs sequences of equal length")
)

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe–Chiba band).
//     -1 disables the constraint, 0 allows the diagonal only.
//   - SlopePenalty — cost added to insertion/deletion steps (>= 0).
//   - ReturnPath   — if true, DTW backtracks and returns the warping path.
//     Requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix, TwoRows or NoMemory.
//
// Example:
//
//	opts := dtw.DefaultOptions()
//	opts.Window = 10
//	opts.ReturnPath = true
//	opts.MemoryMode = dtw.FullMatrix
//	dist, path, err := dtw.Series(seqA, seqB, &opts)
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns Options with no window, no slope penalty, no path
// and TwoRows storage, which is what the curve comparisons use.
func DefaultOptions() Options {
	return Options{
		Window:       -1,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   TwoRows,
	}
}

// Coord is one step of a warping path: a[I] is aligned with b[J] (0-based).
type Coord struct {
	I, J int
}
