package texcache

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/walltex"
	"github.com/gogpu/walltex/internal/slotmap"
)

// Slot names one of the two result stores.
type Slot uint8

const (
	// Segments holds the exposed runs of every wall.
	Segments Slot = iota
	// Sprites holds the placed sprites of every wall. It is derived from
	// Segments.
	Sprites
)

// String returns "segments" or "sprites".
func (s Slot) String() string {
	switch s {
	case Segments:
		return "segments"
	case Sprites:
		return "sprites"
	default:
		return fmt.Sprintf("Slot(%d)", uint8(s))
	}
}

// Pending is a snapshot of a slot's dirty state.
// Handles is nil when All is set or the slot is clean.
type Pending struct {
	Dirty   bool
	All     bool
	Handles []walltex.Handle
}

// slot is a result store plus its dirty state. The results are touched only
// by the frame thread; the dirty state may be marked from any goroutine.
type slot[T any] struct {
	results *slotmap.Map[T]

	mu      sync.Mutex
	pending Pending
}

func newSlot[T any]() *slot[T] {
	return &slot[T]{results: slotmap.New[T](64)}
}

func (s *slot[T]) mark(handles []walltex.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending.Dirty = true
	if !s.pending.All {
		s.pending.Handles = append(s.pending.Handles, handles...)
	}
}

func (s *slot[T]) markAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = Pending{Dirty: true, All: true}
}

// take returns the dirty state and leaves the slot clean. Marks that arrive
// while the returned work is processed apply to the next recompute.
func (s *slot[T]) take() Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pending
	s.pending = Pending{}
	return p
}

func (s *slot[T]) snapshot() Pending {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.pending
	p.Handles = slices.Clone(p.Handles)
	return p
}
