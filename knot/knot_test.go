// SPDX-License-Identifier: MIT

package knot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphcheck/geom"
	"github.com/katalvlaran/graphcheck/knot"
)

const r = knot.DefaultOriginRadius

func at(x, y float64) geom.Knot { return geom.Knot{Point: geom.Point{X: x, Y: y}} }

func label(text string) *geom.Symbol { return &geom.Symbol{Text: text} }

func TestTestPosition_Pairs(t *testing.T) {
	cases := []struct {
		name      string
		trusted   geom.Knot
		submitted geom.Knot
		want      bool
	}{
		{"SameQuadrant", at(0.5, 0.4), at(0.2, 0.9), true},
		{"OppositeX", at(0.5, 0.4), at(-0.2, 0.9), false},
		{"OppositeY", at(-0.5, -0.4), at(-0.2, 0.9), false},
		{"BothAtOrigin", at(0.01, 0.01), at(-0.02, 0.02), true},
		{"TrustedOnYAxis", at(0.01, 0.5), at(-0.3, 0.6), true},
		{"SubmittedOnXAxis", at(0.4, -0.5), at(0.3, 0.02), true},
		{"ExactlyOnAxis", at(0, 0.5), at(-0.7, 0.5), true},
		{"OutsideRadius", at(0.03, 0.5), at(-0.03, 0.5), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := knot.TestPosition([]geom.Knot{tc.trusted}, []geom.Knot{tc.submitted}, r)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestTestPosition_Reversed verifies the retry against the reversed submitted array.
func TestTestPosition_Reversed(t *testing.T) {
	trusted := []geom.Knot{at(-1, 0.5), at(1, -0.5)}
	reversed := []geom.Knot{at(1, -0.5), at(-1, 0.5)}
	assert.True(t, knot.TestPosition(trusted, reversed, r))

	mixed := []geom.Knot{at(1, 0.5), at(1, -0.5)}
	assert.False(t, knot.TestPosition(trusted, mixed, r))
}

func TestTestPosition_EmptyAndMismatch(t *testing.T) {
	assert.True(t, knot.TestPosition(nil, nil, r))
	assert.False(t, knot.TestPosition([]geom.Knot{at(1, 1)}, nil, r))
}

func TestTestSymbols(t *testing.T) {
	withAll := func(s, x, y *geom.Symbol) geom.Knot {
		k := at(1, 1)
		k.Symbol, k.XSymbol, k.YSymbol = s, x, y
		return k
	}
	cases := []struct {
		name      string
		trusted   geom.Knot
		submitted geom.Knot
		want      bool
	}{
		{"BothUnlabelled", at(1, 1), at(2, 2), true},
		{"SameLabels", withAll(label("A"), label("a"), label("b")), withAll(label("A"), label("a"), label("b")), true},
		{"DifferentText", withAll(label("A"), nil, nil), withAll(label("B"), nil, nil), false},
		{"MissingSymbol", withAll(label("A"), nil, nil), at(1, 1), false},
		{"ExtraXSymbol", at(1, 1), withAll(nil, label("a"), nil), false},
		{"YSymbolDiffers", withAll(nil, nil, label("c")), withAll(nil, nil, label("d")), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, knot.TestSymbols([]geom.Knot{tc.trusted}, []geom.Knot{tc.submitted}))
		})
	}
}

// TestTestSymbols_Reversed labels two intercepts and swaps them on the submitted side.
func TestTestSymbols_Reversed(t *testing.T) {
	a, b := at(-1, 0), at(1, 0)
	a.Symbol, b.Symbol = label("A"), label("B")
	sa, sb := a, b

	assert.True(t, knot.TestSymbols([]geom.Knot{a, b}, []geom.Knot{sb, sa}))

	sc := sb
	sc.Symbol = label("C")
	assert.False(t, knot.TestSymbols([]geom.Knot{a, b}, []geom.Knot{sa, sc}))
}
