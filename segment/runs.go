// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package segment

import (
	"math"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/internal/segtree"
)

// runCollector turns the leaves of one texture query into merged runs.
type runCollector struct {
	side        walltex.Side
	origin      float64 // left edge of the queried wall
	prevBlocked bool
	runs        []walltex.Run
}

// collectRuns queries [start, end) for side and returns the exposed runs.
func collectRuns(tree *segtree.Tree, start, end float64, side walltex.Side) []walltex.Run {
	c := runCollector{side: side, origin: start}
	must(tree.VisitLeaves(start, end, c.visit))
	return c.runs
}

func (c *runCollector) visit(l segtree.Leaf) {
	// First tile boundary at or after the leaf start.
	tile := math.Ceil((l.Start-c.origin)/tileWidth)*tileWidth + c.origin
	extend := !c.prevBlocked && tile > l.Start

	switch {
	case tile >= l.End:
		// No tile starts inside this leaf; it only extends an open run.
		if extend {
			c.emit(l, l.Start, l.End)
		}
	case l.Count(segtree.Surface) <= 0:
		start := tile
		if extend {
			start = l.Start
		}
		c.emit(l, start, l.End)
		c.prevBlocked = false
	default:
		if extend {
			c.emit(l, l.Start, tile)
		}
		c.prevBlocked = true
	}
}

func (c *runCollector) emit(l segtree.Leaf, start, end float64) {
	left, right := corners(l, c.side)
	if n := len(c.runs); n > 0 && c.runs[n-1].End == start {
		c.runs[n-1].End = end
		c.runs[n-1].HasRightCorner = right
		return
	}
	c.runs = append(c.runs, walltex.Run{
		Start:          start,
		End:            end,
		HasLeftCorner:  left,
		HasRightCorner: right,
	})
}

// corners reports whether end caps are allowed at the left and right end of
// a run ending in leaf l. A corner is blocked only when a neighbor's probe
// is present on the near side of the edge and absent on the far side.
func corners(l segtree.Leaf, side walltex.Side) (left, right bool) {
	near, far := segtree.BelowLeft, segtree.AboveLeft
	nearR, farR := segtree.BelowRight, segtree.AboveRight
	if side == walltex.Bottom {
		near, far = far, near
		nearR, farR = farR, nearR
	}
	left = l.Count(near) <= 0 || l.Count(far) > 0
	right = l.Count(nearR) <= 0 || l.Count(farR) > 0
	return left, right
}
