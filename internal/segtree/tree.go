// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package segtree implements a coordinate-compressed segment tree with
// range-increment counters, used by the sweep in package segment.
//
// The tree is built over a fixed set of x coordinates. Its leaves are the
// elementary intervals between consecutive distinct coordinates, and every
// query range must start and end on a registered coordinate.
//
// Updates are lazy: a delta is stored on each maximal node that lies fully
// inside the update range and is never pushed to children. Queries walk down
// to the leaves and sum the counters of all nodes on the root-to-leaf path.
package segtree

import (
	"errors"
	"fmt"
	"slices"
)

// Errors returned by the tree.
var (
	// ErrTooFewCoordinates is returned by New when fewer than two distinct
	// coordinates are supplied; such a tree would have no leaves.
	ErrTooFewCoordinates = errors.New("segtree: fewer than 2 distinct coordinates")

	// ErrUnknownCoordinate is returned when a range bound is not one of the
	// coordinates the tree was built over.
	ErrUnknownCoordinate = errors.New("segtree: coordinate not in tree")

	// ErrEmptyRange is returned when start >= end.
	ErrEmptyRange = errors.New("segtree: start must be less than end")
)

// Counter selects one of the independent counters kept per node.
type Counter uint8

// Counters. Surface counts walls covering an interval; the corner counters
// count the shifted corner probes of nearby walls.
const (
	Surface Counter = iota
	BelowLeft
	AboveLeft
	BelowRight
	AboveRight

	numCounters
)

var counterNames = [numCounters]string{
	Surface:    "surface",
	BelowLeft:  "below_left_corner",
	AboveLeft:  "above_left_corner",
	BelowRight: "below_right_corner",
	AboveRight: "above_right_corner",
}

// String returns the counter name.
func (c Counter) String() string {
	if c < numCounters {
		return counterNames[c]
	}
	return fmt.Sprintf("Counter(%d)", uint8(c))
}

// counts holds one value per counter.
type counts [numCounters]int32

// Leaf is an elementary interval [Start, End) with the effective counter
// values at that interval.
type Leaf struct {
	Start, End float64
	counts     counts
}

// Count returns the effective value of counter c over the leaf.
func (l Leaf) Count(c Counter) int {
	return int(l.counts[c])
}

// Tree is a segment tree over a compressed set of coordinates.
//
// A Tree is not safe for concurrent use.
type Tree struct {
	coords []float64       // sorted distinct coordinates
	index  map[float64]int // coordinate -> position in coords
	leaves int             // len(coords) - 1

	// nodes is indexed heap-style: root is 1, children of i are 2i and 2i+1.
	nodes []counts
}

// New builds a tree over the distinct values in coords. The input slice is
// not modified.
func New(coords []float64) (*Tree, error) {
	cs := slices.Clone(coords)
	slices.Sort(cs)
	cs = slices.Compact(cs)
	if len(cs) < 2 {
		return nil, ErrTooFewCoordinates
	}

	index := make(map[float64]int, len(cs))
	for i, c := range cs {
		index[c] = i
	}

	leaves := len(cs) - 1
	return &Tree{
		coords: cs,
		index:  index,
		leaves: leaves,
		nodes:  make([]counts, 4*leaves),
	}, nil
}

// Leaves returns the number of elementary intervals.
func (t *Tree) Leaves() int {
	return t.leaves
}

// span converts a coordinate range to leaf indexes [ql, qr).
func (t *Tree) span(start, end float64) (int, int, error) {
	ql, ok := t.index[start]
	if !ok {
		return 0, 0, fmt.Errorf("%w: start %v", ErrUnknownCoordinate, start)
	}
	qr, ok := t.index[end]
	if !ok {
		return 0, 0, fmt.Errorf("%w: end %v", ErrUnknownCoordinate, end)
	}
	if ql >= qr {
		return 0, 0, fmt.Errorf("%w: [%v, %v)", ErrEmptyRange, start, end)
	}
	return ql, qr, nil
}

// Update adds delta to counter c over [start, end).
func (t *Tree) Update(start, end float64, delta int, c Counter) error {
	if c >= numCounters {
		return fmt.Errorf("segtree: invalid counter %d", uint8(c))
	}
	ql, qr, err := t.span(start, end)
	if err != nil {
		return err
	}
	t.update(1, 0, t.leaves, ql, qr, int32(delta), c)
	return nil
}

func (t *Tree) update(node, left, right, ql, qr int, delta int32, c Counter) {
	if right <= ql || qr <= left {
		return
	}
	if ql <= left && right <= qr {
		t.nodes[node][c] += delta
		return
	}
	mid := (left + right) / 2
	t.update(2*node, left, mid, ql, qr, delta, c)
	t.update(2*node+1, mid, right, ql, qr, delta, c)
}

// VisitLeaves calls fn for every leaf inside [start, end), in increasing x
// order, with the counters summed along the path from the root.
func (t *Tree) VisitLeaves(start, end float64, fn func(Leaf)) error {
	ql, qr, err := t.span(start, end)
	if err != nil {
		return err
	}
	t.visit(1, 0, t.leaves, ql, qr, counts{}, fn)
	return nil
}

func (t *Tree) visit(node, left, right, ql, qr int, acc counts, fn func(Leaf)) {
	if right <= ql || qr <= left {
		return
	}
	for c := range acc {
		acc[c] += t.nodes[node][c]
	}
	if right-left > 1 {
		mid := (left + right) / 2
		t.visit(2*node, left, mid, ql, qr, acc, fn)
		t.visit(2*node+1, mid, right, ql, qr, acc, fn)
		return
	}
	fn(Leaf{Start: t.coords[left], End: t.coords[right], counts: acc})
}

// Min returns the smallest effective value of counter c over [start, end).
func (t *Tree) Min(start, end float64, c Counter) (int, error) {
	if c >= numCounters {
		return 0, fmt.Errorf("segtree: invalid counter %d", uint8(c))
	}
	first := true
	var lowest int
	err := t.VisitLeaves(start, end, func(l Leaf) {
		if v := l.Count(c); first || v < lowest {
			lowest = v
			first = false
		}
	})
	return lowest, err
}
