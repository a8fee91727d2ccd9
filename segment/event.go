// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package segment

import (
	"cmp"
	"math"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/internal/segtree"
)

// cornerProbe is the distance by which corner probes are shifted from a
// wall's edges.
const cornerProbe = 5

// tileWidth is the texture tile granularity. Runs start on multiples of
// tileWidth from the wall's left edge.
const tileWidth = 10

// phase tells whether an event opens or closes a wall's vertical span.
type phase uint8

const (
	open phase = iota
	closing
)

// operation tells whether an event queries the tree or changes it.
type operation uint8

const (
	get operation = iota
	update
)

// event is a horizontal span entering or leaving the sweep at height y.
type event struct {
	y          float64
	start, end float64
	phase      phase
	op         operation
	affect     segtree.Counter // update events only
	wall       walltex.Handle  // get events only
}

// kind is the tagged variant of an event used for ordering events at the
// same height.
type kind uint8

// Event kinds in sweep order. At equal y, corner probes are opened before
// anything else and closed after everything else; tops are queried before
// walls ending at that height are removed, and bottoms are queried before
// walls starting at that height are added.
const (
	kindCornerOpen   kind = iota // 0
	kindGetOpen                  // 1: top edge query
	kindSurfaceClose             // 2
	kindGetClose                 // 3: bottom edge query
	kindSurfaceOpen              // 4
	_                            // 5: unused
	kindCornerClose              // 6
)

func (e event) kind() kind {
	switch {
	case e.op == update && e.affect != segtree.Surface:
		if e.phase == open {
			return kindCornerOpen
		}
		return kindCornerClose
	case e.op == get && e.phase == open:
		return kindGetOpen
	case e.op == update && e.phase == closing:
		return kindSurfaceClose
	case e.op == get:
		return kindGetClose
	default:
		return kindSurfaceOpen
	}
}

// compareEvents orders events by y, then by kind.
func compareEvents(a, b event) int {
	if c := cmp.Compare(a.y, b.y); c != 0 {
		return c
	}
	return cmp.Compare(a.kind(), b.kind())
}

// ceilToTile rounds w up to the next multiple of tileWidth.
func ceilToTile(w float64) float64 {
	return math.Ceil(w/tileWidth) * tileWidth
}

// appendWallEvents appends the twelve events generated by one wall.
func appendWallEvents(events []event, w walltex.Wall) []event {
	x, y, wd, h := w.Rect.X, w.Rect.Y, w.Rect.W, w.Rect.H
	texEnd := x + ceilToTile(wd)

	pair := func(openY, closeY, start, end float64, c segtree.Counter) {
		events = append(events,
			event{y: openY, start: start, end: end, phase: open, op: update, affect: c},
			event{y: closeY, start: start, end: end, phase: closing, op: update, affect: c},
		)
	}

	// texture queries
	events = append(events,
		event{y: y, start: x, end: texEnd, phase: open, op: get, wall: w.Handle},
		event{y: y + h, start: x, end: texEnd, phase: closing, op: get, wall: w.Handle},
	)

	// occlusion
	pair(y, y+h, x, x+wd, segtree.Surface)

	// corner probes
	pair(y-cornerProbe, y+h-cornerProbe, x+cornerProbe, x+wd+cornerProbe, segtree.BelowLeft)
	pair(y+cornerProbe, y+h+cornerProbe, x+cornerProbe, x+wd+cornerProbe, segtree.AboveLeft)
	pair(y-cornerProbe, y+h-cornerProbe, x-cornerProbe, x+wd-cornerProbe, segtree.BelowRight)
	pair(y+cornerProbe, y+h+cornerProbe, x-cornerProbe, x+wd-cornerProbe, segtree.AboveRight)

	return events
}
