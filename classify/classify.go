// SPDX-License-Identifier: MIT

// Package classify groups the curves of a submission by colour channel and
// orders them left to right, which fixes the correspondence between trusted
// and submitted curves without depending on the order they were drawn in.
package classify

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/graphcheck/geom"
)

// Channel is a colour channel a curve can be drawn in.
type Channel int

const (
	Blue Channel = iota
	Orange
	Green
)

// NumChannels is the number of colour channels.
const NumChannels = 3

var channelNames = [NumChannels]string{"Blue", "Orange", "Green"}

// Channels lists every channel in evaluation order.
func Channels() []Channel {
	return []Channel{Blue, Orange, Green}
}

// String returns the colour name, or "Channel(n)" for an unknown index.
func (c Channel) String() string {
	if c.Valid() {
		return channelNames[c]
	}

	return "Channel(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	return c >= 0 && c < NumChannels
}

// Classes holds the curves of each channel, indexed by Channel.
type Classes [NumChannels][]*geom.Curve

// Classify partitions curves by ColorIdx and sorts each channel by ascending
// Bounds().MinX. The sort is stable, so curves starting at the same x keep
// their submission order. Curves with an unknown colour index are dropped.
// Complexity: O(n log n).
func Classify(curves []*geom.Curve) Classes {
	var out Classes
	for _, c := range curves {
		ch := Channel(c.ColorIdx())
		if !ch.Valid() {
			continue
		}
		out[ch] = append(out[ch], c)
	}
	for _, list := range out {
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Bounds().MinX < list[j].Bounds().MinX
		})
	}

	return out
}
