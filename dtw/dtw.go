// SPDX-License-Identifier: MIT

package dtw

import (
	"math"
)

// DTW — Dynamic Time Warping
//
// Description:
//
//	DTW measures similarity between two sequences that may vary
//	in time or speed by finding an optimal “warping path”.
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     c     = cost(a[i-1], b[j-1])
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     match = D[i-1][j-1]
//     D[i][j] = c + min(ins, del, match)
//  4. distance = D[n][m].
//  5. If ReturnPath, backtrack from (n,m) to (1,1) following the predecessor
//     with minimal step cost (diagonal preferred on ties).
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) (FullMatrix) or O(m) (TwoRows, NoMemory)
//
// Errors:
//   - ErrEmptyInput      — if either input is empty.
//   - ErrBadInput        — if an option is out of range.
//   - ErrPathNeedsMatrix — if ReturnPath=true without FullMatrix.
func DTW[T any](a, b []T, cost func(x, y T) float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err = o.validate(); err != nil {
		return 0, nil, err
	}

	switch o.MemoryMode {
	case FullMatrix:
		return fullMatrix(a, b, cost, o)
	case TwoRows:
		return twoRows(a, b, cost, o), nil, nil
	default:
		return oneRow(a, b, cost, o), nil, nil
	}
}

// validate checks option ranges and combinations.
func (o Options) validate() error {
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return ErrBadInput
	}
	if o.MemoryMode < FullMatrix || o.MemoryMode > NoMemory {
		return ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return ErrPathNeedsMatrix
	}

	return nil
}

// inWindow reports whether cell (i,j) lies inside the Sakoe–Chiba band.
func (o Options) inWindow(i, j int) bool {
	return o.Window < 0 || abs(i-j) <= o.Window
}

func fullMatrix[T any](a, b []T, cost func(x, y T) float64, o Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !o.inWindow(i, j) {
				dp[i][j] = inf
				continue
			}
			best := min3(dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty, dp[i-1][j-1])
			dp[i][j] = cost(a[i-1], b[j-1]) + best
		}
	}

	distance := dp[n][m]
	if !o.ReturnPath || math.IsInf(distance, 1) {
		return distance, nil, nil
	}

	return distance, backtrack(dp, o.SlopePenalty), nil
}

// backtrack walks the filled matrix from (n,m) back to (1,1).
func backtrack(dp [][]float64, penalty float64) []Coord {
	i, j := len(dp)-1, len(dp[0])-1
	path := make([]Coord, 0, i+j)
	for {
		path = append(path, Coord{I: i - 1, J: j - 1})
		if i == 1 && j == 1 {
			break
		}
		diag, up, left := dp[i-1][j-1], dp[i-1][j]+penalty, dp[i][j-1]+penalty
		switch {
		case diag <= up && diag <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

func twoRows[T any](a, b []T, cost func(x, y T) float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	prev, curr := make([]float64, m+1), make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !o.inWindow(i, j) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
			curr[j] = cost(a[i-1], b[j-1]) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

func oneRow[T any](a, b []T, cost func(x, y T) float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)
	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	for i := 1; i <= n; i++ {
		diag := row[0]
		row[0] = inf
		for j := 1; j <= m; j++ {
			up := row[j]
			if !o.inWindow(i, j) {
				row[j] = inf
			} else {
				best := min3(up+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
				row[j] = cost(a[i-1], b[j-1]) + best
			}
			diag = up
		}
	}

	return row[m]
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
