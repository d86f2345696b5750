// SPDX-License-Identifier: MIT

// Package segment splits a curve into sections at its turning points.
//
// The shape test compares curves section by section so that a curve with the
// right turning points but a wrong local shape between them is caught, and so
// that the first and last sections (where a free-hand stroke tends to
// overshoot) can be judged more loosely than the interior ones.
package segment

import (
	"math"

	"github.com/katalvlaran/graphcheck/geom"
)

// Split partitions c.Pts() into contiguous sections bounded by c's turning
// points (maxima then minima).
//
// Points are scanned in drawing order. At each point the first unconsumed
// turning point whose coordinates match it closes the current section and is
// consumed, so it cannot close a second one. A match is exact equality when
// eps is 0, otherwise |dx| <= eps and |dy| <= eps. Adjacent sections share
// their boundary point, so no section is empty. Sections alias c's points
// with capped capacity and must not be written to.
//
// k matched turning points give k+1 sections, in curve order. Turning points
// that never match any point produce no boundary.
//
// Complexity: O(n·k) time, O(n) memory.
func Split(c *geom.Curve, eps float64) [][]geom.Point {
	pts := c.Pts()
	pending := c.TurningPoints()

	var sections [][]geom.Point
	prev := 0
	for i := 0; i < len(pts) && len(pending) > 0; i++ {
		for j, k := range pending {
			if !matches(pts[i], k.Point, eps) {
				continue
			}
			pending = append(pending[:j], pending[j+1:]...)
			sections = append(sections, pts[prev:i+1:i+1])
			prev = i
			break
		}
	}

	return append(sections, pts[prev:len(pts):len(pts)])
}

func matches(p, q geom.Point, eps float64) bool {
	if eps == 0 {
		return p == q
	}

	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}
