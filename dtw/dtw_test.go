// SPDX-License-Identifier: MIT

package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcheck/dtw"
	"github.com/katalvlaran/graphcheck/geom"
)

// TestDTW_EmptyInput verifies that DTW returns ErrEmptyInput
// when either input sequence is empty.
func TestDTW_EmptyInput(t *testing.T) {
	opts := dtw.DefaultOptions()

	// Empty first sequence
	_, _, err := dtw.Series([]float64{}, []float64{1, 2, 3}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty first sequence should error")

	// Empty second sequence
	_, _, err = dtw.Series([]float64{1, 2, 3}, []float64{}, &opts)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput, "empty second sequence should error")
}

// TestDTW_BadOptions ensures out-of-range options trigger ErrBadInput.
func TestDTW_BadOptions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(o *dtw.Options)
	}{
		{"WindowBelowMinusOne", func(o *dtw.Options) { o.Window = -2 }},
		{"NegativePenalty", func(o *dtw.Options) { o.SlopePenalty = -0.5 }},
		{"NaNPenalty", func(o *dtw.Options) { o.SlopePenalty = math.NaN() }},
		{"UnknownMode", func(o *dtw.Options) { o.MemoryMode = dtw.MemoryMode(42) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := dtw.DefaultOptions()
			tc.mutate(&opts)
			_, _, err := dtw.Series([]float64{1}, []float64{1}, &opts)
			assert.ErrorIs(t, err, dtw.ErrBadInput)
		})
	}
}

// TestDTW_PathNeedsMatrix ensures ReturnPath=true with non-FullMatrix mode errors.
func TestDTW_PathNeedsMatrix(t *testing.T) {
	for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
		opts := dtw.DefaultOptions()
		opts.ReturnPath = true
		opts.MemoryMode = mode

		_, _, err := dtw.Series([]float64{1, 2}, []float64{1, 2}, &opts)
		assert.ErrorIs(t, err, dtw.ErrPathNeedsMatrix, "ReturnPath without FullMatrix must error ErrPathNeedsMatrix")
	}
}

// TestDTW_BasicDistance verifies that identical sequences have zero distance
// and no path is returned by default.
func TestDTW_BasicDistance(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 1, 2}

	dist, path, err := dtw.Series(a, b, nil)
	assert.NoError(t, err, "identical sequences should not error")
	assert.Equal(t, 0.0, dist, "identical sequences must have zero distance")
	assert.Nil(t, path, "default ReturnPath=false should yield nil path")
}

// TestDTW_SyntheticDistanceAndPath checks a perfect subsequence match
// and that the path length equals n + (m-n).
func TestDTW_SyntheticDistanceAndPath(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix

	dist, path, err := dtw.Series(a, b, &opts)
	require.NoError(t, err, "should not error on perfect match")
	assert.Equal(t, 0.0, dist, "perfect subsequence match yields zero cost")
	assert.Len(t, path, 4, "path length should be len(a)+(len(b)-len(a))")
	assert.Equal(t, dtw.Coord{I: 0, J: 0}, path[0], "first path point")
	assert.Equal(t, dtw.Coord{I: 2, J: 3}, path[len(path)-1], "last path point")
}

// TestDTW_WindowConstraint verifies that a strict window = 0
// with a length mismatch yields +Inf distance and no path.
func TestDTW_WindowConstraint(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 3, 4}
	opts := dtw.DefaultOptions()
	opts.Window = 0
	opts.MemoryMode = dtw.FullMatrix
	opts.ReturnPath = true

	dist, path, err := dtw.Series(a, b, &opts)
	assert.NoError(t, err, "should not error with window constraint")
	assert.True(t, math.IsInf(dist, 1), "window=0 with length mismatch should yield +Inf")
	assert.Nil(t, path)
}

// TestDTW_SlopePenaltyAffectsDistance ensures that a positive slope penalty
// increases the computed distance by exactly that penalty.
func TestDTW_SlopePenaltyAffectsDistance(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 1, 2, 3}

	// No penalty
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	dist0, _, err := dtw.Series(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, dist0, "zero penalty allows perfect cost")

	// Penalty = 1.0
	opts.SlopePenalty = 1.0
	dist1, _, err := dtw.Series(a, b, &opts)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, dist1, "penalty=1.0 adds exactly one unit to distance")
}

// TestDTW_MemoryModesAgree confirms TwoRows and NoMemory match FullMatrix
// on several shapes, windows and penalties.
func TestDTW_MemoryModesAgree(t *testing.T) {
	pairs := [][2][]float64{
		{{0, 1, 2, 3}, {0, 1, 1, 2, 3}},
		{{5, 6, 7}, {5, 7}},
		{{0, 0, 1, 2, 1, 0}, {0, 1, 1, 1, 0}},
		{{4.2, 4.17, 4.19, 4.08}, {4.2, 4.1, 4.0}},
	}
	for _, w := range []int{-1, 1, 2} {
		for _, pen := range []float64{0, 0.5} {
			for _, p := range pairs {
				ref := dtw.DefaultOptions()
				ref.Window, ref.SlopePenalty, ref.MemoryMode = w, pen, dtw.FullMatrix
				want, _, err := dtw.Series(p[0], p[1], &ref)
				require.NoError(t, err)

				for _, mode := range []dtw.MemoryMode{dtw.TwoRows, dtw.NoMemory} {
					opts := ref
					opts.MemoryMode = mode
					got, path, err := dtw.Series(p[0], p[1], &opts)
					require.NoError(t, err)
					assert.Equal(t, want, got, "mode %d window %d penalty %v", mode, w, pen)
					assert.Nil(t, path)
				}
			}
		}
	}
}

// TestDTW_GenericCost runs DTW over a custom element type.
func TestDTW_GenericCost(t *testing.T) {
	type sample struct{ v int }
	cost := func(x, y sample) float64 { return math.Abs(float64(x.v - y.v)) }

	d, _, err := dtw.DTW([]sample{{1}, {5}}, []sample{{1}, {4}}, cost, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

// TestPoints_SquaredEuclidean checks the point cost is the squared distance.
func TestPoints_SquaredEuclidean(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}}
	b := []geom.Point{{X: 3, Y: 4}}

	d, _, err := dtw.Points(a, b, nil)
	require.NoError(t, err)
	assert.Equal(t, 25.0, d)
}

// TestCurves_SelfAndReverse verifies zero self-distance and direction invariance.
func TestCurves_SelfAndReverse(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 0.3, Y: 0.8}, {X: 0.6, Y: 0.2}, {X: 1, Y: 1}}
	b := []geom.Point{{X: 0, Y: 0.1}, {X: 0.5, Y: 0.5}, {X: 1, Y: 0.9}}

	self, err := dtw.Curves(a, a, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, self)

	rev, err := dtw.Curves(a, geom.Reversed(a), nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rev, "reversed copy must cost nothing")

	fwd, _, err := dtw.Points(a, geom.Reversed(a), nil)
	require.NoError(t, err)
	assert.Greater(t, fwd, 0.0, "one-direction DTW is not direction invariant")

	d1, err := dtw.Curves(a, b, nil)
	require.NoError(t, err)
	d2, err := dtw.Curves(a, geom.Reversed(b), nil)
	require.NoError(t, err)
	assert.InDelta(t, d1, d2, 1e-12)
}

func TestCurves_Errors(t *testing.T) {
	_, err := dtw.Curves(nil, []geom.Point{{}}, nil)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	opts.MemoryMode = dtw.FullMatrix
	_, err = dtw.Curves([]geom.Point{{}}, []geom.Point{{}}, &opts)
	assert.ErrorIs(t, err, dtw.ErrBadInput)
}

// TestAlignedError covers the index-aligned metric and its reversed retry.
func TestAlignedError(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := []geom.Point{{X: 0, Y: 1}, {X: 1, Y: 1}}

	e, err := dtw.AlignedError(a, b, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, e, 1e-12)

	e, err = dtw.AlignedError(a, geom.Reversed(a), 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e, "reversed copy is matched by the reversed pass")

	_, err = dtw.AlignedError(a, b[:1], 2)
	assert.ErrorIs(t, err, dtw.ErrLengthMismatch)
	_, err = dtw.AlignedError(a, b, 0)
	assert.ErrorIs(t, err, dtw.ErrBadInput)
	_, err = dtw.AlignedError(nil, nil, 2)
	assert.ErrorIs(t, err, dtw.ErrEmptyInput)
}
