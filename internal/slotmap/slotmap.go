// Package slotmap provides a generation-checked map keyed by wall handles.
//
// Entries are stored in a slice indexed by Handle.Index. Each entry records
// the generation it was written with, so a lookup with a handle from an
// earlier (or later) generation of the same index misses instead of
// returning another wall's data.
package slotmap

import (
	"iter"

	"github.com/gogpu/walltex"
)

type entry[V any] struct {
	gen   uint32
	used  bool
	value V
}

// Map maps live wall handles to values.
//
// The zero value is an empty map ready to use.
// A Map is not safe for concurrent use.
type Map[V any] struct {
	entries []entry[V]
	n       int
}

// New creates an empty map with room for size indexes.
func New[V any](size int) *Map[V] {
	return &Map[V]{entries: make([]entry[V], 0, size)}
}

// Get returns the value stored for h. It reports false if nothing is stored
// at h.Index or the stored generation differs from h.Gen.
func (m *Map[V]) Get(h walltex.Handle) (V, bool) {
	var zero V
	i := int(h.Index)
	if i >= len(m.entries) {
		return zero, false
	}
	e := &m.entries[i]
	if !e.used || e.gen != h.Gen {
		return zero, false
	}
	return e.value, true
}

// Set stores v for h, replacing any value stored at the same index,
// regardless of its generation.
func (m *Map[V]) Set(h walltex.Handle, v V) {
	i := int(h.Index)
	if i >= len(m.entries) {
		m.entries = append(m.entries, make([]entry[V], i+1-len(m.entries))...)
	}
	e := &m.entries[i]
	if !e.used {
		m.n++
	}
	*e = entry[V]{gen: h.Gen, used: true, value: v}
}

// Delete removes the value stored for h and reports whether one was
// present. A stale handle deletes nothing.
func (m *Map[V]) Delete(h walltex.Handle) bool {
	i := int(h.Index)
	if i >= len(m.entries) {
		return false
	}
	e := &m.entries[i]
	if !e.used || e.gen != h.Gen {
		return false
	}
	*e = entry[V]{}
	m.n--
	return true
}

// Len returns the number of stored values.
func (m *Map[V]) Len() int {
	return m.n
}

// Clear removes all values, keeping the allocated storage.
func (m *Map[V]) Clear() {
	clear(m.entries)
	m.n = 0
}

// All iterates over stored handles and values in index order.
func (m *Map[V]) All() iter.Seq2[walltex.Handle, V] {
	return func(yield func(walltex.Handle, V) bool) {
		for i := range m.entries {
			e := &m.entries[i]
			if !e.used {
				continue
			}
			if !yield(walltex.Handle{Index: uint32(i), Gen: e.gen}, e.value) {
				return
			}
		}
	}
}
