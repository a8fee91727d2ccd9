// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package segment

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/internal/segtree"
)

// ComputeWallRuns returns the exposed top and bottom runs of every wall.
//
// Walls with non-positive width are ignored. A wall whose edges are fully
// covered on both sides has no entry in the result. The result is empty if
// the walls span fewer than two distinct x coordinates.
//
// The order of walls breaks ties between events at the same height and
// precedence, so callers should pass walls in a stable order.
func ComputeWallRuns(walls []walltex.Wall) map[walltex.Handle]walltex.Sides {
	result := make(map[walltex.Handle]walltex.Sides)

	events := make([]event, 0, 12*len(walls))
	for _, w := range walls {
		if w.Degenerate() {
			continue
		}
		events = appendWallEvents(events, w)
	}
	slices.SortStableFunc(events, compareEvents)

	coords := make([]float64, 0, 2*len(events))
	for _, e := range events {
		coords = append(coords, e.start, e.end)
	}
	tree, err := segtree.New(coords)
	if errors.Is(err, segtree.ErrTooFewCoordinates) {
		return result
	}
	must(err)

	for _, e := range events {
		if e.op == update {
			delta := 1
			if e.phase == closing {
				delta = -1
			}
			must(tree.Update(e.start, e.end, delta, e.affect))
			continue
		}

		side := walltex.Top
		if e.phase == closing {
			side = walltex.Bottom
		}
		runs := collectRuns(tree, e.start, e.end, side)
		if len(runs) == 0 {
			continue
		}
		sides := result[e.wall]
		sides.Set(side, runs)
		result[e.wall] = sides
	}

	walltex.Logger().Debug("segment: computed wall runs",
		"walls", len(walls), "events", len(events), "leaves", tree.Leaves(), "exposed", len(result))
	return result
}

// must panics on tree errors. Every event range is built from the same
// coordinates the tree is built over, so an error here is a bug.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("segment: %v", err))
	}
}
