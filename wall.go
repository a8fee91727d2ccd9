package walltex

import "fmt"

// Handle identifies a wall owned by the host entity system.
//
// Index is the stable integer id the host assigns to the entity (its slot in
// the entity list). Gen changes whenever the host destroys the entity and
// reuses the index, so a handle kept past the wall's lifetime no longer
// matches and caches treat it as a miss.
type Handle struct {
	Index uint32
	Gen   uint32
}

// String returns the handle in "index.gen" form.
func (h Handle) String() string {
	return fmt.Sprintf("%d.%d", h.Index, h.Gen)
}

// Rect is an axis-aligned rectangle in plane units.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Wall is a read-only view of a host wall entity.
type Wall struct {
	Handle   Handle
	Rect     Rect
	Material string // key into the material catalog
}

// Degenerate reports whether the wall has no width and is therefore ignored
// by the segment engine.
func (w Wall) Degenerate() bool {
	return w.Rect.W <= 0
}

// WallSource is the host's live wall list.
//
// Walls must return the walls in a stable order; the order breaks ties
// between events at the same height. Lookup resolves an entity index to a
// wall and reports false if the entity does not exist or is not a wall.
type WallSource interface {
	Walls() []Wall
	Lookup(index int) (Wall, bool)
}

// Resolve looks up the wall behind h and reports false if it is gone or the
// handle is stale.
func Resolve(src WallSource, h Handle) (Wall, bool) {
	w, ok := src.Lookup(int(h.Index))
	if !ok || w.Handle != h {
		return Wall{}, false
	}
	return w, true
}

// WallList is a WallSource backed by a slice. It is intended for tools and
// tests; hosts with a real entity system implement WallSource directly.
type WallList []Wall

// Walls returns the list itself.
func (l WallList) Walls() []Wall {
	return l
}

// Lookup returns the wall whose handle index equals index.
func (l WallList) Lookup(index int) (Wall, bool) {
	for _, w := range l {
		if int(w.Handle.Index) == index {
			return w, true
		}
	}
	return Wall{}, false
}
